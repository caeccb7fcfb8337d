// Package fsio provides standalone file I/O helpers: existence and
// type checks, text and binary read/write, structured-data
// serialization (JSON, YAML, TOML, gob), file metadata, buffered
// hashing, MIME detection and the built-in extension sets.
//
// Helpers here take plain paths and carry no state; operations scoped
// to a base directory live in the parent fsutils package.
package fsio
