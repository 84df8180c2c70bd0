// Package container holds the request and response types for container
// operations: the configuration builders callers assemble payloads with, the
// option structs for lifecycle calls, and the read-only descriptors decoded
// from daemon responses.
//
// Config is the central type. It can only be obtained through a
// ConfigBuilder, whose Build method is the single validation point, so a
// Config in circulation is always complete and engine-acceptable.
package container
