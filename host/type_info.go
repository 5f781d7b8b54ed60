package host

import (
	"fmt"
	"reflect"
)

// TypeInfo is a handle for a test type. Methods are always looked up on the pointer type, so that
// both value and pointer receivers are visible.
type TypeInfo struct {
	ptrType reflect.Type
}

// TypeOf returns the TypeInfo for the dynamic type of proto, which can be a value, a pointer, or a
// typed nil pointer such as (*MySpec)(nil). It returns nil if proto is nil.
func TypeOf(proto interface{}) *TypeInfo {
	t := reflect.TypeOf(proto)
	if t == nil {
		return nil
	}
	if t.Kind() != reflect.Ptr {
		t = reflect.PtrTo(t)
	}
	return &TypeInfo{ptrType: t}
}

func (t *TypeInfo) Name() string {
	elem := t.ptrType.Elem()
	if elem.Name() != "" {
		return elem.Name()
	}
	return elem.String()
}

// Type returns the pointer type.
func (t *TypeInfo) Type() reflect.Type {
	return t.ptrType
}

func (t *TypeInfo) Implements(iface reflect.Type) bool {
	return t.ptrType.Implements(iface)
}

// CreateInstance returns a pointer to a new zero value of the type.
func (t *TypeInfo) CreateInstance() interface{} {
	return reflect.New(t.ptrType.Elem()).Interface()
}

// DeclaredMethods returns the exported methods of the type, excluding any that are promoted from
// embedded fields. A method that has the same name as a method of an embedded field is treated as
// promoted. The result is sorted by name.
func (t *TypeInfo) DeclaredMethods() []*MethodInfo {
	var ret []*MethodInfo
	for i := 0; i < t.ptrType.NumMethod(); i++ {
		m := t.ptrType.Method(i)
		if t.isPromoted(m.Name) {
			continue
		}
		ret = append(ret, &MethodInfo{class: t, method: m})
	}
	return ret
}

func (t *TypeInfo) isPromoted(name string) bool {
	elem := t.ptrType.Elem()
	if elem.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < elem.NumField(); i++ {
		f := elem.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() != reflect.Ptr && ft.Kind() != reflect.Interface {
			ft = reflect.PtrTo(ft)
		}
		if _, ok := ft.MethodByName(name); ok {
			return true
		}
	}
	return false
}

// MethodInfo is a handle for one method of a test type.
type MethodInfo struct {
	class  *TypeInfo
	method reflect.Method
}

func (m *MethodInfo) Name() string { return m.method.Name }

// TypeName is the name of the type that declares the method.
func (m *MethodInfo) TypeName() string { return m.class.Name() }

func (m *MethodInfo) Class() *TypeInfo { return m.class }

func (m *MethodInfo) CreateInstance() interface{} { return m.class.CreateInstance() }

// ParamTypes returns the parameter types of the method, not including the receiver.
func (m *MethodInfo) ParamTypes() []reflect.Type {
	ft := m.method.Type
	ret := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		ret = append(ret, ft.In(i))
	}
	return ret
}

// ResultTypes returns the types of the method's return values.
func (m *MethodInfo) ResultTypes() []reflect.Type {
	ft := m.method.Type
	ret := make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		ret = append(ret, ft.Out(i))
	}
	return ret
}

// Invoke calls the method on instance. Panics in the method are not recovered. If the method's last
// return value is an error, it is returned.
func (m *MethodInfo) Invoke(instance interface{}, args ...interface{}) error {
	recv := reflect.ValueOf(instance)
	if !recv.IsValid() || recv.Type() != m.class.ptrType {
		return fmt.Errorf("cannot invoke %s.%s on %T", m.TypeName(), m.Name(), instance)
	}
	params := m.ParamTypes()
	if len(args) != len(params) {
		return fmt.Errorf("%s.%s takes %d arguments, got %d", m.TypeName(), m.Name(), len(params), len(args))
	}
	in := []reflect.Value{recv}
	for i, a := range args {
		v := reflect.ValueOf(a)
		if !v.IsValid() {
			v = reflect.Zero(params[i])
		}
		if !v.Type().AssignableTo(params[i]) {
			return fmt.Errorf("argument %d of %s.%s must be %s, got %T", i, m.TypeName(), m.Name(), params[i], a)
		}
		in = append(in, v)
	}
	out := m.method.Func.Call(in)
	if len(out) != 0 {
		if err, ok := out[len(out)-1].Interface().(error); ok && err != nil {
			return err
		}
	}
	return nil
}

func (m *MethodInfo) String() string {
	return m.TypeName() + "." + m.Name()
}
