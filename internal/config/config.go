package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Режимы хранения.
const (
	ModeDatabase = "database"
	ModeFile     = "file"
	ModeMemory   = "memory"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress string        `json:"server_address"`
	DatabaseDSN   string        `json:"database_dsn"`
	SQLitePath    string        `json:"sqlite_path"`
	SessionSecret string        `json:"session_secret"`
	SessionTTL    time.Duration `json:"-"`
	EnableHTTPS   bool          `json:"enable_https"`
	TLSCertPath   string        `json:"tls_cert_path"`
	TLSKeyPath    string        `json:"tls_key_path"`
	BcryptCost    int           `json:"bcrypt_cost"`
	Debug         bool          `json:"debug"`
	Mode          string        `json:"-"`
}

// flagKeys связывает имена флагов с ключами окружения.
var flagKeys = map[string]string{
	"address":     "SERVER_ADDRESS",
	"dsn":         "DATABASE_DSN",
	"sqlite":      "SQLITE_PATH",
	"secret":      "SESSION_SECRET",
	"session-ttl": "SESSION_TTL",
	"https":       "ENABLE_HTTPS",
	"cert":        "TLS_CERT_PATH",
	"key":         "TLS_KEY_PATH",
	"debug":       "DEBUG",
	"bcrypt":      "BCRYPT_COST",
	"config":      "CONFIG",
}

// RegisterFlags объявляет флаги командной строки. Значения по умолчанию у флагов
// пустые: умолчания задаёт viper, а флаг учитывается, только если его передали.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("address", "a", "", "server address")
	fs.StringP("dsn", "d", "", "PostgreSQL DSN")
	fs.StringP("sqlite", "f", "", "SQLite database file (used when no DSN is given)")
	fs.String("secret", "", "session cookie signing secret")
	fs.Duration("session-ttl", 0, "server-side session lifetime")
	fs.BoolP("https", "s", false, "enable HTTPS")
	fs.String("cert", "", "path to TLS certificate")
	fs.String("key", "", "path to TLS key")
	fs.Bool("debug", false, "enable debug logging")
	fs.Int("bcrypt", 0, "bcrypt cost for password hashes")
	fs.StringP("config", "c", "", "path to JSON config file")
}

// NewConfig собирает конфигурацию. Приоритет: флаги, переменные окружения,
// .env, JSON-файл, значения по умолчанию.
func NewConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", "localhost:8080")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("SQLITE_PATH", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("ENABLE_HTTPS", false)
	v.SetDefault("TLS_CERT_PATH", "cert.pem")
	v.SetDefault("TLS_KEY_PATH", "key.pem")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("DEBUG", false)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}
	v.AutomaticEnv()

	// JSON-файл конфигурации ниже по приоритету, чем окружение
	if path := v.GetString("CONFIG"); path != "" {
		if err := loadJSON(v, path); err != nil {
			return nil, err
		}
	}

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ошибку игнорируем, если файла нет

	cfg := &Config{
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		EnableHTTPS:   v.GetBool("ENABLE_HTTPS"),
		TLSCertPath:   v.GetString("TLS_CERT_PATH"),
		TLSKeyPath:    v.GetString("TLS_KEY_PATH"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		Debug:         v.GetBool("DEBUG"),
	}

	// Определяем режим работы
	switch {
	case cfg.DatabaseDSN != "":
		cfg.Mode = ModeDatabase
	case cfg.SQLitePath != "":
		cfg.Mode = ModeFile
	default:
		cfg.Mode = ModeMemory
	}

	return cfg, nil
}

func loadJSON(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}
	type rawJSON Config
	jsonCfg := &rawJSON{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, err)
	}

	set := func(key, val string) {
		if val != "" {
			v.SetDefault(key, val)
		}
	}
	set("SERVER_ADDRESS", jsonCfg.ServerAddress)
	set("DATABASE_DSN", jsonCfg.DatabaseDSN)
	set("SQLITE_PATH", jsonCfg.SQLitePath)
	set("SESSION_SECRET", jsonCfg.SessionSecret)
	set("TLS_CERT_PATH", jsonCfg.TLSCertPath)
	set("TLS_KEY_PATH", jsonCfg.TLSKeyPath)
	if jsonCfg.EnableHTTPS {
		v.SetDefault("ENABLE_HTTPS", true)
	}
	if jsonCfg.Debug {
		v.SetDefault("DEBUG", true)
	}
	if jsonCfg.BcryptCost > 0 {
		v.SetDefault("BCRYPT_COST", jsonCfg.BcryptCost)
	}
	return nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if len(cfg.SessionSecret) < 16 {
		return errors.New("session secret must be at least 16 characters")
	}
	if cfg.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("TLS certificate and key are required when HTTPS is enabled")
	}
	return nil
}
