// Package build exposes build-time metadata for the featplan binary.
package build

// Version is the release identifier of the binary. It stays "dev" unless
// overridden through -ldflags at build time.
var Version = "dev"
