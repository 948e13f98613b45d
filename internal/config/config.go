package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	GitHub GitHubConfig

	JWTSecret        string
	JWTSessionExpiry time.Duration

	PublicBaseURL string

	ImgurClientID string
	AdminEmails   []string

	Firebase FirebaseConfig

	SMTP SMTPConfig

	PurgeInterval time.Duration
}

// GitHubConfig points at the repository used as the document store.
type GitHubConfig struct {
	Token  string
	Repo   string
	Branch string
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsJSON string
	StorageBucket   string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionExpiry, err := time.ParseDuration(getEnv("JWT_SESSION_EXPIRY", "24h"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	purgeInterval, err := time.ParseDuration(getEnv("PURGE_INTERVAL", "24h"))
	if err != nil {
		purgeInterval = 24 * time.Hour
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		GitHub: GitHubConfig{
			Token:  getEnvOrPanic("GITHUB_TOKEN"),
			Repo:   getEnv("GITHUB_REPO", "conquiguias/conquiguias"),
			Branch: getEnv("GITHUB_BRANCH", "main"),
		},

		JWTSecret:        getEnvOrPanic("JWT_SECRET"),
		JWTSessionExpiry: sessionExpiry,

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "https://conquiguias.vercel.app"),

		ImgurClientID: getEnv("IMGUR_CLIENT_ID", ""),
		AdminEmails:   splitList(getEnv("ADMIN_EMAILS", "")),

		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		},

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},

		PurgeInterval: purgeInterval,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
