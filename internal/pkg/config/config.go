package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// InitConfig loads configuration from the given env file (local runs only)
// and then from the process environment. The returned config is constructed
// once at startup and passed by reference to every component.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "nagarhub")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "nagarhub")

	// SMTP config
	configs.SMTP.Host = GetEnv("SMTP_HOST", "smtp.gmail.com")
	configs.SMTP.Port = GetEnvAsInt("SMTP_PORT", 465)
	configs.SMTP.Username = GetEnv("SMTP_EMAIL", "")
	configs.SMTP.Password = GetEnv("SMTP_PASSWORD", "")
	configs.SMTP.From = GetEnv("SMTP_FROM", configs.SMTP.Username)

	// SMS gateway config
	configs.SMS.GatewayURL = GetEnv("SMS_GATEWAY_URL", "")
	configs.SMS.APIKey = GetEnv("SMS_GATEWAY_API_KEY", "")
	configs.SMS.SenderID = GetEnv("SMS_SENDER_ID", "NAGARHUB")

	// Content verifier config
	configs.Gemini.APIKey = GetEnv("GOOGLE_GEMINI_API_KEY", "")
	configs.Gemini.Model = GetEnv("GEMINI_MODEL", "gemini-1.5-flash")
	configs.Gemini.BaseURL = GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	configs.Gemini.Timeout = GetEnvAsInt("GEMINI_TIMEOUT", 30)

	// Image storage config
	configs.Storage.CloudName = GetEnv("CLOUDINARY_CLOUD_NAME", "")
	configs.Storage.APIKey = GetEnv("CLOUDINARY_API_KEY", "")
	configs.Storage.APISecret = GetEnv("CLOUDINARY_API_SECRET", "")
	configs.Storage.Folder = GetEnv("CLOUDINARY_FOLDER", "")

	// Auth config
	configs.Auth.AdminSecretCode = GetEnv("ADMIN_SECRET_CODE", "")
	configs.Auth.OTPExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 10)

	// Broadcast config
	configs.Broadcast.Locality = GetEnv("BROADCAST_LOCALITY", "")
	configs.Broadcast.MatchAll = GetEnvAsBool("BROADCAST_MATCH_ALL", false)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
