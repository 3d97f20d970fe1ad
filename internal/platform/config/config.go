package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Resolver strategy names accepted in RESOLVER_STRATEGY.
var resolverStrategies = []string{"dfs", "shortest", "shortest-legacy"}

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// AdminAPIKeyHash is the bcrypt hash of the key exchanged for admin tokens.
	// Token issuing is disabled while it is empty.
	AdminAPIKeyHash string

	ResolverStrategy       string
	ResultCacheSize        int
	AmountDisplayPrecision int

	ConvertRateLimit   string
	AuthRateLimit      string
	CORSAllowedOrigins []string
	PosthogAPIKey      string

	SeedRatesFile      string
	ApplySeedOnStartup bool

	LoadTestMaxRequests int
	LoadTestConcurrency int
	LoadTestFrom        string
	LoadTestTo          string
	LoadTestAmount      float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "currency-converter")
	viper.SetDefault("ADMIN_API_KEY_HASH", "")
	viper.SetDefault("RESOLVER_STRATEGY", "dfs")
	viper.SetDefault("RESULT_CACHE_SIZE", 4096)
	viper.SetDefault("AMOUNT_DISPLAY_PRECISION", 4)
	viper.SetDefault("CONVERT_RATE_LIMIT", "100-S")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("SEED_RATES_FILE", "")
	viper.SetDefault("APPLY_SEED_ON_STARTUP", true)
	viper.SetDefault("LOADTEST_MAX_REQUESTS", 100000)
	viper.SetDefault("LOADTEST_CONCURRENCY", 64)
	viper.SetDefault("LOADTEST_FROM", "CAD")
	viper.SetDefault("LOADTEST_TO", "EUR")
	viper.SetDefault("LOADTEST_AMOUNT", 100)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		AdminAPIKeyHash:    viper.GetString("ADMIN_API_KEY_HASH"),
		ResolverStrategy:   strings.ToLower(strings.TrimSpace(viper.GetString("RESOLVER_STRATEGY"))),
		ResultCacheSize:    viper.GetInt("RESULT_CACHE_SIZE"),
		ConvertRateLimit:   viper.GetString("CONVERT_RATE_LIMIT"),
		AuthRateLimit:      viper.GetString("AUTH_RATE_LIMIT"),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
		SeedRatesFile:      viper.GetString("SEED_RATES_FILE"),
		ApplySeedOnStartup: viper.GetBool("APPLY_SEED_ON_STARTUP"),

		AmountDisplayPrecision: viper.GetInt("AMOUNT_DISPLAY_PRECISION"),

		LoadTestMaxRequests: viper.GetInt("LOADTEST_MAX_REQUESTS"),
		LoadTestConcurrency: viper.GetInt("LOADTEST_CONCURRENCY"),
		LoadTestFrom:        viper.GetString("LOADTEST_FROM"),
		LoadTestTo:          viper.GetString("LOADTEST_TO"),
		LoadTestAmount:      viper.GetFloat64("LOADTEST_AMOUNT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.AdminAPIKeyHash == "" {
		log.Println("Warning: ADMIN_API_KEY_HASH not set. Admin token issuing is disabled.")
	}

	if !isKnownStrategy(cfg.ResolverStrategy) {
		return nil, fmt.Errorf("invalid RESOLVER_STRATEGY %q: expected one of %s", cfg.ResolverStrategy, strings.Join(resolverStrategies, ", "))
	}

	if cfg.ResultCacheSize <= 0 {
		log.Printf("Warning: Invalid value for RESULT_CACHE_SIZE (%d). Defaulting to 4096.\n", cfg.ResultCacheSize)
		cfg.ResultCacheSize = 4096
	}

	if cfg.AmountDisplayPrecision < 0 {
		cfg.AmountDisplayPrecision = 0
	}

	for name, value := range map[string]string{"CONVERT_RATE_LIMIT": cfg.ConvertRateLimit, "AUTH_RATE_LIMIT": cfg.AuthRateLimit} {
		if _, err := limiter.NewRateFromFormatted(value); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.LoadTestMaxRequests <= 0 {
		cfg.LoadTestMaxRequests = 100000
	}

	return cfg, nil
}

func isKnownStrategy(s string) bool {
	for _, known := range resolverStrategies {
		if s == known {
			return true
		}
	}
	return false
}
