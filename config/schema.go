package config

// configSchemaJSON is the bundled JSON Schema for solve.yaml. It is kept
// inline rather than as a separate embedded file since it is small and
// has exactly one consumer (Load).
const configSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "bottleneck_rule": {
      "type": "string",
      "enum": ["est_informed", "sum_of_durations"]
    },
    "reoptimize": {
      "type": "boolean"
    },
    "brute_force_limit": {
      "type": "integer",
      "minimum": 1,
      "maximum": 12
    }
  }
}`
