// Package core provides the error types shared by the fluentcron packages.
//
// This package contains:
//   - Sentinel errors for out-of-range, invalid, and unsupported values
//   - RangeError and InvalidValueError, which name the offending argument
//
// Most users should import the root package github.com/jdziat/fluentcron
// instead of this package directly.
package core
