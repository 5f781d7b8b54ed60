// Package specs contains the specifications that the command-line tool runs. They describe a few
// small in-memory types, and also act as an end-to-end check that the adapter, the host runner and
// the bdd engine work together.
//
// Support code that is not specific to these specifications, such as building commands from the
// contexts they declare, is in the lower-level adapter package.
package specs
