package specs

import (
	"errors"
	"sort"

	"github.com/launchdarkly/bdd-adapter/adapter"
	"github.com/launchdarkly/bdd-adapter/bdd"
	"github.com/launchdarkly/bdd-adapter/host"

	"github.com/stretchr/testify/assert"
)

type registry map[string]string

func (r registry) names() []string {
	ret := make([]string, 0, len(r))
	for k := range r {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// RegistryTests mixes plain host facts with a specification method, using attributes instead of a
// dedicated class command.
type RegistryTests struct {
	bdd.Base
	registry registry
}

func (r *RegistryTests) TestAttributes() map[string]host.CommandEnumerator {
	return map[string]host.CommandEnumerator{
		"NewRegistryIsEmpty":      host.Fact{},
		"LookupOfMissingKeyFails": host.Fact{},
		"Describe_registry":       adapter.Specification{},
	}
}

func (r *RegistryTests) NewRegistryIsEmpty() error {
	if len(registry{}.names()) != 0 {
		return errors.New("expected no names")
	}
	return nil
}

func (r *RegistryTests) LookupOfMissingKeyFails() {
	if _, ok := (registry{})["missing"]; ok {
		panic("found a key in an empty registry")
	}
}

func (r *RegistryTests) Describe_registry(c *bdd.Context) {
	c.Before(func() {
		r.registry = registry{"b": "2", "a": "1"}
	})

	c.It("lists names in sorted order", func(t *bdd.T) {
		assert.Equal(t, []string{"a", "b"}, r.registry.names())
	})

	c.Context("after removing a name", func(c *bdd.Context) {
		c.Before(func() { delete(r.registry, "a") })

		c.It("no longer lists it", func(t *bdd.T) {
			assert.Equal(t, []string{"b"}, r.registry.names())
		})
	})
}
