// Package version carries the build version, overridable with
// -ldflags "-X gibbs/internal/version.Version=...".
package version

var Version = "0.1.0"
