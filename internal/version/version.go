// internal/version/version.go
package version

// Version is overridden at build time with
//
//	go build -ldflags "-X bitslice/internal/version.Version=v1.2.3"
var Version = "0.1.0-dev"
