package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Version is reported in the default User-Agent.
const Version = "1.0"

// DefaultUserAgent identifies the SDK to the mite API.
const DefaultUserAgent = "mite-go/" + Version

// Config holds the connection settings of a Client.
// ConfigFromEnv reads MITE_URL, MITE_API_KEY, MITE_USERNAME, MITE_PASSWORD,
// MITE_USER_AGENT, MITE_EXPECTED_CONTENT_TYPE, MITE_INSECURE_SKIP_VERIFY and
// MITE_TIMEOUT. Unprefixed names are never consulted.
type Config struct {
	// URL is the account base URL, e.g. https://acme.mite.yo.lk
	URL string `split_words:"true"`

	// APIKey is sent as X-MiteApiKey. When empty, basic auth with
	// Username and Password is used if both are set.
	APIKey   string `split_words:"true"`
	Username string `split_words:"true"`
	Password string `split_words:"true"`

	// UserAgent defaults to DefaultUserAgent in New.
	UserAgent           string `split_words:"true"`
	ExpectedContentType string `split_words:"true" default:"application/json"`

	// Transport options
	InsecureSkipVerify bool          `split_words:"true" default:"false"`
	Timeout            time.Duration `split_words:"true" default:"30s"`
}

// ConfigFromEnv loads a Config from MITE_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MITE", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("mite: URL cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("mite: timeout must be >= 0")
	}
	return nil
}
