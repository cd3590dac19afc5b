package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// OAuthClient holds the credentials of one social login provider.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

func (o OAuthClient) Configured() bool {
	return o.ClientID != "" && o.ClientSecret != ""
}

type Config struct {
	Port        string
	PostgresURL string
	LogLevel    string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RedisAddr       string
	KafkaBrokers    []string
	KafkaTopic      string
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     []string

	Google    OAuthClient
	Facebook  OAuthClient
	Instagram OAuthClient
}

const (
	minBcryptCost = 10

	defaultJWTSecret = "your-secret-key"
)

// InsecureJWTSecret reports whether tokens would be signed with the
// well-known fallback secret.
func (c Config) InsecureJWTSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Load reads the optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getenv("PORT", "3000"),
		PostgresURL: getenv("POSTGRES_URL", "postgres://localhost:5432/gidimart?sslmode=disable"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		JWTSecret:  getenv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:     getDuration("JWT_TTL", 30*24*time.Hour),
		BcryptCost: getInt("BCRYPT_COST", 12),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBrokers:    splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:      getenv("KAFKA_TOPIC", "gidimart.events"),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		CORSOrigins:     splitCSV(getenv("CORS_ORIGINS", "*")),

		Google: OAuthClient{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
		},
		Facebook: OAuthClient{
			ClientID:     os.Getenv("FACEBOOK_APP_ID"),
			ClientSecret: os.Getenv("FACEBOOK_APP_SECRET"),
			RedirectURI:  os.Getenv("FACEBOOK_REDIRECT_URI"),
		},
		Instagram: OAuthClient{
			ClientID:     os.Getenv("INSTAGRAM_CLIENT_ID"),
			ClientSecret: os.Getenv("INSTAGRAM_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("INSTAGRAM_REDIRECT_URI"),
		},
	}

	if cfg.BcryptCost < minBcryptCost {
		cfg.BcryptCost = minBcryptCost
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
