// Package version carries the analyzer's build identity.
//
// Version, commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/LivedOma/JsonPlaceholderAnalyzer/version.Version=1.2.0"
//
// Fields not injected fall back to the toolchain's module build info.
package version
