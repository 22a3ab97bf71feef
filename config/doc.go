// Package config loads the optional solver configuration file that
// exposes the tunables the spec leaves as open questions (Q1 bottleneck
// rule, Q2 re-optimization) without hardcoding them as compile-time
// constants. Format and validation follow sourceplane-lite-ci's pattern:
// YAML parsed to interface{}, re-marshaled to JSON, and checked against a
// bundled JSON Schema via santhosh-tekuri/jsonschema before being decoded
// into a typed struct.
package config
