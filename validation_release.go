//go:build release

package vkinit

// DiagnosticsEnabled is false when built with -tags release.
const DiagnosticsEnabled = false
