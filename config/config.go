package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppMode          string
	MongoURI         string
	MongoDBName      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	TokenExpiryDays  int
	OTPExpiryMinutes int
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppMode:          getEnv("APP_MODE", "debug"),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDBName:      getEnv("MONGO_DB_NAME", "chatapp"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenExpiryDays:  getEnvAsInt("TOKEN_EXPIRY_DAYS", 15),
		OTPExpiryMinutes: getEnvAsInt("OTP_EXPIRY_MINUTES", 5),
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate fails fast on missing external credentials instead of
// letting requests go out with empty ones.
func (c *Config) validate() error {
	required := map[string]string{
		"MONGO_URI":          c.MongoURI,
		"JWT_SECRET":         c.JWTSecret,
		"TWILIO_ACCOUNT_SID": c.TwilioAccountSID,
		"TWILIO_AUTH_TOKEN":  c.TwilioAuthToken,
		"TWILIO_FROM_NUMBER": c.TwilioFromNumber,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("missing required environment variable %s", name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
