// Package config loads the analyzer configuration from config.yml,
// .env files, and the process environment, in that order of precedence
// (environment wins). Defaults are applied before validation, so a
// missing file still yields a usable configuration.
package config
