//go:build !release

package vkinit

// DiagnosticsEnabled is true for development builds.
const DiagnosticsEnabled = true
