package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Firebase  FirebaseConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	AppEnv         string   `envconfig:"APP_ENV" default:"development"`
	Port           string   `envconfig:"PORT" default:"5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type LoggerConfig struct {
	Level             string `envconfig:"LOGGER_LEVEL" default:"debug"`
	Encoding          string `envconfig:"LOGGER_ENCODING" default:"console"`
	DisableCaller     bool   `envconfig:"LOGGER_DISABLE_CALLER" default:"false"`
	DisableStacktrace bool   `envconfig:"LOGGER_DISABLE_STACKTRACE" default:"true"`
}

type FirebaseConfig struct {
	ProjectID       string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE" default:"serviceAccountKey.json"`
	StorageBucket   string `envconfig:"FIREBASE_STORAGE_BUCKET"`
}

type UploadConfig struct {
	// ImageDir is shared with the storefront's static assets.
	ImageDir    string `envconfig:"UPLOAD_IMAGE_DIR" default:"./public/images"`
	BaseURL     string `envconfig:"UPLOAD_BASE_URL" default:"/images"`
	MaxSizeMB   int64  `envconfig:"UPLOAD_MAX_SIZE_MB" default:"5"`
	MaxPerBatch int    `envconfig:"UPLOAD_MAX_PER_BATCH" default:"10"`
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	Max    int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
}

type AdminConfig struct {
	// Emails is the allow-list: members are authorized as admins even
	// before the provider-issued claim exists.
	Emails []string `envconfig:"ADMIN_EMAILS" default:"admin@vengase.com,test@admin.vengase.com"`
}

func LoadEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
