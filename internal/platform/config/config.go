package config

import (
	"log"
	"time"

	"github.com/SscSPs/ipt_portal_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StoreFilePath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// SessionSecret signs the cookie session that carries transient state
	// such as the email pending verification.
	SessionSecret string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_FILE_PATH", "data/ipt_demo_v1.json")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "ipt-portal-app")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StoreFilePath = viper.GetString("STORE_FILE_PATH")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		// An ephemeral secret invalidates cookie sessions across restarts,
		// which only loses pending-verification state.
		generated, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = generated
		log.Println("Warning: SESSION_SECRET not set. Generated an ephemeral secret for this process.")
	}

	return cfg, nil
}
