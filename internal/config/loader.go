package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var configSearchPaths = []string{
	"./cmd/analyzer/config.yml",
	"../cmd/analyzer/config.yml",
	"../../cmd/analyzer/config.yml",
	"./config.yml",
	"../config.yml",
}

var envSearchPaths = []string{
	"./.env.analyzer",
	"./.env",
	"../.env",
	"../../.env",
}

// LoaderOption overrides file discovery for Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load reads the analyzer configuration. YAML provides the base,
// .env and process environment variables override it, then defaults
// fill the gaps and the result is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	configFile := lo.configFile
	if configFile == "" {
		configFile = findFirst(configSearchPaths)
	} else if !exists(configFile) {
		return nil, fmt.Errorf("config file %s not found", configFile)
	}
	envFile := lo.envFile
	if envFile == "" {
		envFile = findFirst(envSearchPaths)
	} else if !exists(envFile) {
		return nil, fmt.Errorf("env file %s not found", envFile)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
		// Re-bind to pick up variables the .env file introduced.
		bindEnvVars(v)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findFirst(paths []string) string {
	for _, p := range paths {
		if exists(p) {
			return p
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// bindEnvVars maps every process environment variable onto the nested
// keys viper unmarshals from. AutomaticEnv alone does not surface env
// vars for nested struct fields.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants maps API_BASE_URL onto the key spellings viper may
// use: api_base_url, api.base.url, and one prefix.suffix variant per
// split point (api.base_url, api.base.url).
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
