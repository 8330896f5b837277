// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Every field is optional: a missing file path or an empty file yields the defaults,
// which point the monitor at ws://localhost:8081/ws/assignment_1.
package config
