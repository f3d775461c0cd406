package ucapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// LoadConfigFromFile reads client configuration from a YAML or JSON file.
func LoadConfigFromFile(path string) (*Config, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "yaml", "yml", "json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	v := viper.New()
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return configFromViper(v), nil
}

// LoadConfigFromEnv builds client configuration from environment variables.
// Account and client settings use the UC_ prefix; credentials also honor the
// conventional AZURE_ variables.
func LoadConfigFromEnv() *Config {
	config := &Config{
		AccountID:     os.Getenv("UC_ACCOUNT_ID"),
		BaseURL:       os.Getenv("UC_BASE_URL"),
		TenantID:      os.Getenv("UC_TENANT_ID"),
		ClientID:      os.Getenv("UC_CLIENT_ID"),
		ClientSecret:  os.Getenv("UC_CLIENT_SECRET"),
		AccessToken:   os.Getenv("UC_ACCESS_TOKEN"),
		ResourceScope: os.Getenv("UC_RESOURCE_SCOPE"),
		AuthorityHost: os.Getenv("UC_AUTHORITY_HOST"),
	}

	if config.TenantID == "" {
		config.TenantID = os.Getenv("AZURE_TENANT_ID")
	}

	if config.ClientID == "" {
		config.ClientID = os.Getenv("AZURE_CLIENT_ID")
	}

	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("AZURE_CLIENT_SECRET")
	}

	v := viper.New()
	v.SetEnvPrefix("UC")
	v.AutomaticEnv()

	config.RetryMaxAttempts = v.GetInt("RETRY_MAX_ATTEMPTS")
	config.RetryBaseDelay = v.GetDuration("RETRY_BASE_DELAY")
	config.RetryMaxDelay = v.GetDuration("RETRY_MAX_DELAY")
	config.RetryJitterDisabled = v.GetBool("RETRY_JITTER_DISABLED")
	config.CircuitBreakerDisabled = v.GetBool("CIRCUIT_BREAKER_DISABLED")
	config.FailureThreshold = v.GetUint32("FAILURE_THRESHOLD")
	config.OpenDuration = v.GetDuration("OPEN_DURATION")
	config.DefaultPageSize = v.GetInt("PAGE_SIZE")
	config.HTTPTimeout = v.GetDuration("HTTP_TIMEOUT")
	config.Debug = v.GetBool("DEBUG")

	return config
}

// ParseConnectionString parses a semicolon-delimited connection string of the
// form "AccountId=...;TenantId=...;ClientId=...;ClientSecret=...". Keys are
// case-insensitive and unknown keys are ignored.
func ParseConnectionString(connectionString string) (*Config, error) {
	trimmed := strings.TrimSpace(connectionString)
	if trimmed == "" {
		return nil, ErrEmptyConnectionString
	}

	config := &Config{}

	for _, pair := range strings.Split(trimmed, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid connection string segment %q: missing '='", pair)
		}

		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "accountid":
			config.AccountID = value
		case "tenantid":
			config.TenantID = value
		case "clientid":
			config.ClientID = value
		case "clientsecret":
			config.ClientSecret = value
		case "baseurl":
			config.BaseURL = value
		case "resourcescope":
			config.ResourceScope = value
		}
	}

	if config.AccountID == "" {
		return nil, ErrAccountIDRequired
	}

	return config, nil
}

// LoadDefaultConfig resolves configuration from the conventional sources, in
// order: UC_CONNECTION_STRING, a config file (ucapi.yaml/yml/json in the
// working directory, then ~/.ucapi/), then plain environment variables.
func LoadDefaultConfig() (*Config, error) {
	if cs := os.Getenv("UC_CONNECTION_STRING"); cs != "" {
		return ParseConnectionString(cs)
	}

	path := findConfigFile()
	if path != "" {
		return LoadConfigFromFile(path)
	}

	return LoadConfigFromEnv(), nil
}

func findConfigFile() string {
	names := []string{"ucapi.yaml", "ucapi.yml", "ucapi.json"}

	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".ucapi"))
	}

	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

func configFromViper(v *viper.Viper) *Config {
	config := &Config{
		AccountID:              v.GetString("account_id"),
		BaseURL:                v.GetString("base_url"),
		TenantID:               v.GetString("tenant_id"),
		ClientID:               v.GetString("client_id"),
		ClientSecret:           v.GetString("client_secret"),
		AccessToken:            v.GetString("access_token"),
		ResourceScope:          v.GetString("resource_scope"),
		AuthorityHost:          v.GetString("authority_host"),
		RetryMaxAttempts:       v.GetInt("retry.max_attempts"),
		RetryBaseDelay:         v.GetDuration("retry.base_delay"),
		RetryMaxDelay:          v.GetDuration("retry.max_delay"),
		RetryJitterDisabled:    v.GetBool("retry.jitter_disabled"),
		CircuitBreakerDisabled: v.GetBool("circuit_breaker.disabled"),
		FailureThreshold:       v.GetUint32("circuit_breaker.failure_threshold"),
		OpenDuration:           v.GetDuration("circuit_breaker.open_duration"),
		DefaultPageSize:        v.GetInt("page_size"),
		HTTPTimeout:            v.GetDuration("http_timeout"),
		Debug:                  v.GetBool("debug"),
	}

	if config.DefaultPageSize == 0 {
		config.DefaultPageSize = constants.DefaultPageSize
	}

	return config
}
