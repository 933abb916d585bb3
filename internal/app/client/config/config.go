package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"notekeeper/internal/domain/note"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv            = EnvLocal
	defaultServerURL      = "http://localhost:8000"
	defaultRequestTimeout = 30
	defaultIDScheme       = note.IDSchemeUUID
	defaultConfigDir      = ".notekeeper"
)

var (
	ErrEmptyServerURL   = errors.New("server_url не может быть пустым")
	ErrInvalidServerURL = errors.New("server_url должен быть http(s) адресом")
	ErrInvalidTimeout   = errors.New("request_timeout_seconds должен быть положительным")
	ErrInvalidEnv       = errors.New("app_env должен быть local, dev или prod")
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerURL      string `mapstructure:"server_url"`
	RequestTimeout time.Duration
	IDScheme       string `mapstructure:"id_scheme"`
	NoColor        bool   `mapstructure:"no_color"`
	ConfigDir      string `mapstructure:"config_dir"`
}

// Load читает конфигурацию клиента из .env, переменных окружения и
// файла конфигурации, если viper его нашел
func Load() (*Config, error) {
	loadDotEnv()

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_URL", defaultServerURL)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("ID_SCHEME", defaultIDScheme)
	viper.SetDefault("NO_COLOR", false)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(homeDir, configDir)
		}
	}

	cfg := &Config{
		Env:            strings.ToLower(viper.GetString("APP_ENV")),
		ServerURL:      strings.TrimRight(strings.TrimSpace(viper.GetString("SERVER_URL")), "/"),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		IDScheme:       strings.ToLower(viper.GetString("ID_SCHEME")),
		NoColor:        viper.GetBool("NO_COLOR"),
		ConfigDir:      configDir,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadDotEnv() {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnv, c.Env)
	}

	if c.ServerURL == "" {
		return ErrEmptyServerURL
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServerURL, c.ServerURL)
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if _, err := note.NewIDGenerator(c.IDScheme); err != nil {
		return err
	}

	return nil
}

// SetServerURL переопределяет адрес сервера (флаг --server)
func (c *Config) SetServerURL(raw string) error {
	prev := c.ServerURL
	c.ServerURL = strings.TrimRight(strings.TrimSpace(raw), "/")
	if err := c.Validate(); err != nil {
		c.ServerURL = prev
		return err
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
