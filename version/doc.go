// Package version reports build information for pariter binaries.
//
// Values can be stamped at link time:
//
//	go build -ldflags "-X github.com/kbukum/pariter/version.Version=1.2.0" ./cmd/pariter-bench
//
// Anything not stamped is filled from the module build info embedded by the
// Go toolchain.
package version
