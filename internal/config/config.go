package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string        `yaml:"app_port" env:"APP_PORT" env-default:"8080"`
	DbHost            string        `yaml:"mysql_host" env:"MYSQL_HOST" env-default:"db"`
	DbPort            string        `yaml:"mysql_port" env:"MYSQL_PORT" env-default:"3306"`
	DbUser            string        `yaml:"mysql_user" env:"MYSQL_USER" env-default:"taskmanager"`
	DbPassword        string        `yaml:"mysql_password" env:"MYSQL_PASSWORD" env-default:"taskmanager"`
	DbName            string        `yaml:"mysql_database" env:"MYSQL_DATABASE" env-default:"taskmanager"`
	DbParams          string        `yaml:"mysql_params" env:"MYSQL_PARAMS" env-default:"parseTime=true&multiStatements=true"`
	TrustedProxies    string        `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
	JWTSecret         string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	JWTTTL            time.Duration `yaml:"jwt_ttl" env:"JWT_TTL" env-default:"720h"`
	BcryptCost        int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	Timezone          string        `yaml:"timezone" env:"TIMEZONE" env-default:"Local"`
	TranslationFolder string        `yaml:"translation_folder" env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`
	SeedFile          string        `yaml:"seed_file" env:"SEED_FILE" env-default:"seed.yaml"`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// LoadConfig reads the YAML file at path when it exists and falls back to the
// environment otherwise. Variables from a local .env file are loaded first.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err == nil {
			return &cfg, nil
		}

		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Proxies() []string {
	return parseTrustedProxies(c.TrustedProxies)
}

// Location is the zone used to cut a calendar day for timelines.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
