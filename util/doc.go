// Package util provides generic slice helpers shared across the
// analyzer.
package util
