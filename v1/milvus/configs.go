package milvus

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultBasePath is the REST v2 prefix every operation path is appended to.
const DefaultBasePath = "/v2/vectordb"

const envPrefix = "MILVUS_"

// Config holds connection and behavior settings for the Milvus client.
//
// Example (programmatic):
//
//	cfg := milvus.DefaultConfig()
//	cfg.Endpoint = "http://localhost:19530"
//	cfg.Token = os.Getenv("MILVUS_TOKEN")
//
// Example (builder style):
//
//	cfg := milvus.FromEndpoint("http://localhost:19530").
//	    WithToken(os.Getenv("MILVUS_TOKEN")).
//	    WithTimeout(10 * time.Second)
//
// Example (environment): MILVUS_ENDPOINT, MILVUS_TOKEN, MILVUS_MAX_RETRIES, ...
//
//	cfg, err := milvus.NewConfig()
type Config struct {
	// Base URL of the Milvus server, e.g. "http://localhost:19530".
	Endpoint string `yaml:"endpoint" koanf:"endpoint"`

	// Path prefix of the REST API. Defaults to DefaultBasePath.
	BasePath string `yaml:"base_path" koanf:"base_path"`

	// API key or "user:password" token. Takes precedence over Username/Password.
	Token string `yaml:"token" koanf:"token"`

	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`

	// Maximum duration of a single HTTP attempt.
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`

	// Additional attempts for connection failures and 429/502/503/504 responses.
	MaxRetries int `yaml:"max_retries" koanf:"max_retries"`

	// Wait before the first retry; doubled for every further retry.
	RetryBackoff time.Duration `yaml:"retry_backoff" koanf:"retry_backoff"`

	// Requests per second. Zero disables rate limiting.
	RateLimit float64 `yaml:"rate_limit" koanf:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" koanf:"rate_burst"`

	// Ping the server when the fx application starts.
	CheckConnection bool `yaml:"check_connection" koanf:"check_connection"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:        "http://localhost:19530",
		BasePath:        DefaultBasePath,
		Timeout:         10 * time.Second,
		MaxRetries:      2,
		RetryBackoff:    200 * time.Millisecond,
		RateBurst:       1,
		CheckConnection: true,
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(endpoint string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

// NewConfig returns DefaultConfig overridden by MILVUS_* environment variables.
func NewConfig() (*Config, error) {
	return load(nil)
}

// LoadConfig reads a YAML file, then applies MILVUS_* environment overrides.
//
//	endpoint: http://milvus:19530
//	token: root:Milvus
//	timeout: 5s
//	max_retries: 3
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("milvus: failed to read config file %s: %w", path, err)
	}
	return load(content)
}

func load(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("milvus: failed to parse config: %w", err)
		}
	}

	// MILVUS_MAX_RETRIES -> max_retries
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("milvus: failed to load environment variables: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("milvus: failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the transport depends on.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: endpoint %q must be an http(s) URL", ErrInvalidConfig, c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidConfig)
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("%w: retry_backoff must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative", ErrInvalidConfig)
	}
	if c.Token == "" && c.Password != "" && c.Username == "" {
		return fmt.Errorf("%w: password given without username", ErrInvalidConfig)
	}
	return nil
}

// bearerToken is Token, or "username:password" when only credentials are set.
func (c *Config) bearerToken() string {
	if c.Token != "" {
		return c.Token
	}
	if c.Username != "" {
		return c.Username + ":" + c.Password
	}
	return ""
}

// WithToken sets the bearer token, an API key or "user:password".
func (c *Config) WithToken(token string) *Config {
	c.Token = token
	return c
}

// WithCredentials authenticates as username:password when no token is set.
func (c *Config) WithCredentials(username, password string) *Config {
	c.Username = username
	c.Password = password
	return c
}

// WithBasePath overrides DefaultBasePath, e.g. behind a reverse proxy.
func (c *Config) WithBasePath(path string) *Config {
	c.BasePath = path
	return c
}

// WithTimeout sets the per-attempt HTTP timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithRetries sets how many extra attempts transient failures get and the
// initial backoff, which doubles per retry.
func (c *Config) WithRetries(maxRetries int, backoff time.Duration) *Config {
	c.MaxRetries = maxRetries
	c.RetryBackoff = backoff
	return c
}

// WithRateLimit caps outgoing requests per second. A zero rate disables the limiter.
func (c *Config) WithRateLimit(perSecond float64, burst int) *Config {
	c.RateLimit = perSecond
	c.RateBurst = burst
	return c
}

// WithConnectionCheck toggles the Ping performed when the fx application starts.
func (c *Config) WithConnectionCheck(enabled bool) *Config {
	c.CheckConnection = enabled
	return c
}
