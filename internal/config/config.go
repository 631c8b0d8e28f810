package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string   `yaml:"addr"`
	BaseURL        string   `yaml:"base_url"` // public prefix for stored media URLs
	MediaRoot      string   `yaml:"media_root"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	SecureCookies  bool     `yaml:"secure_cookies"`
}

type Pg struct {
	Host     string
	Port     int
	User     string
	Password string
	Dbname   string
}

// Private holds secrets sourced from the process environment.
// Admin credentials may legitimately be absent: the session gate then
// fails closed and the admin surface stays inaccessible.
type Private struct {
	Pg            Pg
	AdminEmail    string
	AdminPassword string
	ResendAPIKey  string
	MailFrom      string
	OperatorEmail string
}

// AdminConfigured reports whether both gate credentials are present.
func (c *Config) AdminConfigured() bool {
	return c.Private.AdminEmail != "" && c.Private.AdminPassword != ""
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads the public yaml config from configFolder and the private
// part from the environment. Call godotenv.Load before this if secrets
// live in a .env file.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	return &Config{Public: public, Private: PrivateFromEnv()}
}

func PrivateFromEnv() Private {
	port, err := strconv.Atoi(envOr("PG_PORT", "5432"))
	if err != nil {
		panic("PG_PORT is not a number")
	}
	return Private{
		Pg: Pg{
			Host:     envOr("PG_HOST", "localhost"),
			Port:     port,
			User:     os.Getenv("PG_USER"),
			Password: os.Getenv("PG_PASSWORD"),
			Dbname:   envOr("PG_DBNAME", "nousrire"),
		},
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		MailFrom:      os.Getenv("MAIL_FROM"),
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
