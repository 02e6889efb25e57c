// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr       string `env:"BIND_ADDR"            flag:"bind-addr"              flagDesc:"Bind address"`
	PaypalClientID string `env:"PAYPAL_CLIENT_ID"     flag:"paypal-client-id"       flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret   string `env:"PAYPAL_CLIENT_SECRET" flag:"paypal-client-secret"   flagDesc:"Client secret used to authenticate API calls with PayPal"`
	PaypalEnv      string `env:"PAYPAL_ENV"           flag:"paypal-env"             flagDesc:"PayPal environment (sandbox or live)"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		PaypalEnv: "sandbox",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
