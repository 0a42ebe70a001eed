// Package cereal carries the message schemas and msgq plumbing shared with
// the rest of the driving stack. The capnp schemas in this directory are
// trimmed mirrors of the upstream messages, limited to the fields this
// daemon touches, and the Go bindings for them are maintained by hand in the
// capnpc-go accessor style. When adding a field, append it to the schema
// with the next ordinal and mirror the resulting offset in the bindings.
package cereal
