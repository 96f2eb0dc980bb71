package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	SMS       SMSConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	Auth      AuthConfig
	Broadcast BroadcastConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains token verification and issuance configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMTPConfig contains the email notifier configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMSConfig contains the SMS gateway configuration
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

// GeminiConfig contains the content verifier configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout int // in seconds
}

// StorageConfig contains the image blob storage configuration
type StorageConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// AuthConfig contains auth-flow specific configuration
type AuthConfig struct {
	AdminSecretCode  string
	OTPExpiryMinutes int
}

// BroadcastConfig contains broadcast dispatcher configuration
type BroadcastConfig struct {
	Locality string
	MatchAll bool // demo only: bypass the locality filter
}

// NewRelicConfig contains observability configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
