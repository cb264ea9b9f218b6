package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de banco suportados
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Driver      string
	Path        string // Arquivo SQLite
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

// Load carrega o arquivo .env (opcional) e as variáveis de ambiente
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom carrega configurações a partir de um arquivo .env específico.
// Variáveis já definidas no ambiente têm prioridade sobre o arquivo.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Path:        v.GetString("DB_PATH"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("LOCALES_DIR"),
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "./app.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	v.SetDefault("DEFAULT_LANGUAGE", "en")
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.DBName == "" {
			return errors.New("DB_NAME is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

// DSN retorna a connection string do driver configurado
func (d *DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		// foreign_keys habilita o ON DELETE CASCADE de user_profiles.
		// _txlock=immediate pega o lock de escrita no BEGIN, então transações
		// concorrentes esperam o busy_timeout em vez de falhar com SQLITE_BUSY.
		return d.Path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
