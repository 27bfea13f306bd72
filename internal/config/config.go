package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// Database
	DatabaseDriver string
	DatabaseURL    string

	// HTTP
	Host       string
	Port       string
	StaticDir  string
	TrustProxy bool

	// Session
	SessionSecret    []byte
	// EphemeralSession is set when no secret was configured and a random
	// one was generated for this process. Cookies do not survive a restart.
	EphemeralSession bool

	// SecretPasswords unlock the secret note. This is a shared passphrase,
	// not a security boundary.
	SecretPasswords []string

	// App
	Environment string
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load reads configuration from the environment, the optional config file
// and any bound command line flags, in increasing order of precedence.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("database_driver", "sqlite3")
	v.SetDefault("database_url", "valentine.db")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "5000")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("trust_proxy", false)
	v.SetDefault("session_secret", "")
	v.SetDefault("secret_passwords", "forever,valentine")
	v.SetDefault("app_env", EnvDevelopment)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for _, key := range []string{"port", "database_url"} {
			flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	cfg := &Config{
		DatabaseDriver: v.GetString("database_driver"),
		DatabaseURL:    v.GetString("database_url"),
		Host:           v.GetString("host"),
		Port:           v.GetString("port"),
		StaticDir:      v.GetString("static_dir"),
		TrustProxy:     v.GetBool("trust_proxy"),
		Environment:    strings.ToLower(v.GetString("app_env")),
	}

	if cfg.DatabaseDriver != "sqlite3" && cfg.DatabaseDriver != "postgres" {
		return nil, fmt.Errorf("invalid DATABASE_DRIVER %q: expected sqlite3 or postgres", cfg.DatabaseDriver)
	}

	// Parse secret passwords
	for _, p := range strings.Split(v.GetString("secret_passwords"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.SecretPasswords = append(cfg.SecretPasswords, p)
		}
	}
	if len(cfg.SecretPasswords) == 0 {
		return nil, fmt.Errorf("SECRET_PASSWORDS must contain at least one password")
	}

	if secret := v.GetString("session_secret"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		cfg.SessionSecret = securecookie.GenerateRandomKey(32)
		if cfg.SessionSecret == nil {
			return nil, fmt.Errorf("failed to generate session secret")
		}
		cfg.EphemeralSession = true
	}

	return cfg, nil
}
