// Package banner provides the welcome text printed by the welcome CLI.
//
// The text lives in banner.yaml, embedded in the binary and decoded once at
// startup. Each entry of the lines list is exactly one output line:
//
//	lines:
//	  - "Available commands:"
//	  - ""
//
// Default returns a fresh copy of the built-in banner for every caller.
package banner
