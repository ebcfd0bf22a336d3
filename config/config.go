// Package config provides configuration management for the payment signing service.
// Configuration can be loaded from YAML or .env files and overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"io/fs"
	"os"
	"sync"
)

// Config holds all configuration for the payment signing service.
// Values can be set via a configuration file or environment variables.
// Environment variables take precedence over file values.
type Config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Listen  struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"3000"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Cors struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	} `yaml:"cors"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"paygate"`
	} `yaml:"mongo"`
	Gateway Gateway `yaml:"gateway"`
}

// Gateway holds merchant credentials and the fixed trade parameters sent to the gateway.
type Gateway struct {
	MerchantID  string `yaml:"merchant_id" env:"MERCHANT_ID" env-default:"" env-description:"merchant identifier assigned by the gateway"`
	HashKey     string `yaml:"hash_key" env:"HASH_KEY" env-default:"" env-description:"AES key, 32 bytes"`
	HashIV      string `yaml:"hash_iv" env:"HASH_IV" env-default:"" env-description:"AES initialization vector, 16 bytes"`
	ReturnURL   string `yaml:"return_url" env:"RETURN_URL" env-default:""`
	NotifyURL   string `yaml:"notify_url" env:"NOTIFY_URL" env-default:""`
	Version     string `yaml:"version" env:"GATEWAY_VERSION" env-default:"2.0"`
	RespondType string `yaml:"respond_type" env:"RESPOND_TYPE" env-default:"JSON"`
	ItemDesc    string `yaml:"item_desc" env:"ITEM_DESC_DEFAULT" env-default:"Mock Interview Analysis"`
	// Payment method flags; zero means the field is not sent at all.
	LoginType int `yaml:"login_type" env:"LOGIN_TYPE" env-default:"0"`
	Credit    int `yaml:"credit" env:"ENABLE_CREDIT" env-default:"1"`
	WebATM    int `yaml:"web_atm" env:"ENABLE_WEBATM" env-default:"1"`
	VACC      int `yaml:"vacc" env:"ENABLE_VACC" env-default:"1"`
}

var instance *Config
var loadErr error
var once sync.Once

// GetConfig loads configuration once per process.
//
// When a file exists at path it is read first, chosen by extension. YAML values are
// overridden by environment variables, a .env file is exported into the environment
// before it is read. A missing file is not an error: the configuration then comes
// from the environment alone.
//
// Example:
//
//	cfg, err := config.GetConfig(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	once.Do(func() {
		instance, loadErr = Load(path)
	})
	return instance, loadErr
}

// Load reads a fresh configuration without touching the process-wide instance.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if path != "" && fileExists(path) {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	return conf, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
