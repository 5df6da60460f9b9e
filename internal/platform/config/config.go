package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// OAuthProviderConfig holds the client registration for one external provider.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether the provider has enough configuration to run a handshake.
func (p OAuthProviderConfig) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Connection pool
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	DBAcquireTimeout  time.Duration

	// Tokens
	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	JWTIssuer                  string
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	ResetTokenExpiryDuration   time.Duration

	// Password hashing
	BcryptCost      int
	HashConcurrency int64

	// External OAuth Providers
	Google          OAuthProviderConfig
	Facebook        OAuthProviderConfig
	Twitter         OAuthProviderConfig
	FrontendBaseURL string

	CORSAllowedOrigins []string
	LoginRateLimit     string

	// DevExposeResetToken returns reset tokens inline from forgot-password. Ignored in production.
	DevExposeResetToken bool
	MailFrom            string
	PosthogAPIKey       string
}

// Development fallbacks. LoadConfig refuses them in production.
const (
	insecureJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	insecureRefreshSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 0)
	viper.SetDefault("DB_MAX_CONN_IDLE_TIME", "10s")
	viper.SetDefault("DB_ACQUIRE_TIMEOUT", "60s")
	viper.SetDefault("JWT_SECRET", insecureJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "news-aggregator")
	viper.SetDefault("REFRESH_TOKEN_SECRET", insecureRefreshSecret)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "720h")
	viper.SetDefault("RESET_TOKEN_EXPIRY_DURATION", "1h")
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("HASH_CONCURRENCY", 4)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback")
	viper.SetDefault("FACEBOOK_CLIENT_ID", "")
	viper.SetDefault("FACEBOOK_CLIENT_SECRET", "")
	viper.SetDefault("FACEBOOK_REDIRECT_URL", "http://localhost:8080/api/auth/facebook/callback")
	viper.SetDefault("TWITTER_CLIENT_ID", "")
	viper.SetDefault("TWITTER_CLIENT_SECRET", "")
	viper.SetDefault("TWITTER_REDIRECT_URL", "http://localhost:8080/api/auth/twitter/callback")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("DEV_EXPOSE_RESET_TOKEN", false)
	viper.SetDefault("MAIL_FROM", "noreply@newsaggregator.com")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = viper.GetInt32("DB_MIN_CONNS")
	cfg.DBMaxConnIdleTime = parseDuration("DB_MAX_CONN_IDLE_TIME", 10*time.Second)
	cfg.DBAcquireTimeout = parseDuration("DB_ACQUIRE_TIMEOUT", 60*time.Second)

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 7*24*time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "news-aggregator"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		log.Println("Warning: REFRESH_TOKEN_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
		cfg.RefreshTokenSecret = insecureRefreshSecret
	}
	if cfg.RefreshTokenSecret == cfg.JWTSecret {
		log.Println("Warning: REFRESH_TOKEN_SECRET equals JWT_SECRET. Refresh and access tokens must use distinct secrets.")
	}
	if cfg.IsProduction {
		if err := validateProductionSecrets(cfg); err != nil {
			return nil, err
		}
	}
	cfg.RefreshTokenExpiryDuration = parseDuration("REFRESH_TOKEN_EXPIRY_DURATION", 30*24*time.Hour)
	cfg.ResetTokenExpiryDuration = parseDuration("RESET_TOKEN_EXPIRY_DURATION", time.Hour)

	cfg.BcryptCost = viper.GetInt("BCRYPT_COST")
	if cfg.BcryptCost < bcrypt.DefaultCost {
		log.Printf("Warning: BCRYPT_COST (%d) below minimum. Using %d.\n", cfg.BcryptCost, bcrypt.DefaultCost)
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	cfg.HashConcurrency = viper.GetInt64("HASH_CONCURRENCY")
	if cfg.HashConcurrency <= 0 {
		cfg.HashConcurrency = 4
	}

	cfg.Google = loadProvider("GOOGLE")
	cfg.Facebook = loadProvider("FACEBOOK")
	cfg.Twitter = loadProvider("TWITTER")
	cfg.FrontendBaseURL = strings.TrimRight(viper.GetString("FRONTEND_BASE_URL"), "/")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.DevExposeResetToken = viper.GetBool("DEV_EXPOSE_RESET_TOKEN")
	if cfg.DevExposeResetToken && cfg.IsProduction {
		log.Println("Warning: DEV_EXPOSE_RESET_TOKEN is ignored in production.")
		cfg.DevExposeResetToken = false
	}
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func loadProvider(prefix string) OAuthProviderConfig {
	p := OAuthProviderConfig{
		ClientID:     viper.GetString(prefix + "_CLIENT_ID"),
		ClientSecret: viper.GetString(prefix + "_CLIENT_SECRET"),
		RedirectURL:  viper.GetString(prefix + "_REDIRECT_URL"),
	}
	if !p.Enabled() {
		log.Printf("Warning: %s_CLIENT_ID/%s_CLIENT_SECRET not set. %s OAuth will not function.\n", prefix, prefix, strings.ToLower(prefix))
	}
	return p
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// validateProductionSecrets rejects the development fallbacks and a shared
// access/refresh secret.
func validateProductionSecrets(cfg *Config) error {
	var errs []error
	if cfg.JWTSecret == "" || cfg.JWTSecret == insecureJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if cfg.RefreshTokenSecret == "" || cfg.RefreshTokenSecret == insecureRefreshSecret {
		errs = append(errs, errors.New("REFRESH_TOKEN_SECRET must be set in production"))
	}
	if cfg.JWTSecret == cfg.RefreshTokenSecret {
		errs = append(errs, errors.New("JWT_SECRET and REFRESH_TOKEN_SECRET must differ"))
	}
	return errors.Join(errs...)
}
