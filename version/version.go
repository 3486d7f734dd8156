// Package version holds the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/snake/version.Version=...".
package version

// Version is the version of the snake binary.
var Version = "dev"
