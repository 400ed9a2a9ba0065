package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
)

// Config represents the console configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Session  SessionConfig  `mapstructure:"session"`
	Template TemplateConfig `mapstructure:"template"`
}

type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// BackendConfig points the contract layer at the REST backend.
type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type SessionConfig struct {
	MaxAge   int  `mapstructure:"max_age"`
	Secure   bool `mapstructure:"secure"`
	HTTPOnly bool `mapstructure:"http_only"`
}

type TemplateConfig struct {
	Dir   string `mapstructure:"dir"`
	Debug bool   `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "deskhub-console")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("backend.base_url", "http://localhost:8080/api")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("backend.user_agent", "deskhub-console/1.0")

	v.SetDefault("session.max_age", 43200)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.http_only", true)

	v.SetDefault("template.dir", "")
	v.SetDefault("template.debug", false)
}

// Load initializes the configuration with hot reload support. A missing
// config file is fine; defaults plus environment overrides apply.
func Load(configPath string) error {
	var err error
	once.Do(func() {
		v := viper.New()
		setDefaults(v)

		v.SetConfigType("yaml")
		v.SetConfigName("config")
		v.AddConfigPath(configPath)
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
				err = fmt.Errorf("failed to read config: %w", readErr)
				return
			}
		}

		// Environment variable overrides
		v.SetEnvPrefix("CONSOLE")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		cfg = &Config{}
		if err = v.Unmarshal(cfg); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			mu.Lock()
			defer mu.Unlock()

			newCfg := &Config{}
			if err := v.Unmarshal(newCfg); err != nil {
				fmt.Printf("Failed to reload config: %v\n", err)
				return
			}

			// Atomic swap
			cfg = newCfg
		})
	})

	return err
}

// Get returns the current configuration (thread-safe).
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadFromFile loads configuration from a specific file (useful for testing).
func LoadFromFile(configFile string) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// GetServerAddr returns the server listen address.
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction returns true if running in production mode.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
