// Package toml parses the TOML subset used by dockspace configuration files.
//
// Supported: comments, bare and quoted keys, dotted keys, [table] headers,
// basic and literal strings, integers (with _ separators and 0x/0o/0b prefixes),
// floats, booleans, arrays and inline tables. Array-of-tables is rejected.
//
// Parse produces a map[string]any tree; Decode maps it onto structs using
// `toml` field tags. Unmarshal combines both.
package toml
