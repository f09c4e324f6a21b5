// Package fields describes the five cron fields: their names, inclusive
// ranges, and the token grammar each one accepts.
//
// This package includes:
//   - Field, the positional slot of a cron expression
//   - Range constants for values and */N intervals
//   - Validate for checking a single field token
//   - CheckRange and Step, used by the schedule builder
//
// Most users should import the root package github.com/jdziat/fluentcron
// which re-exports these values.
package fields
