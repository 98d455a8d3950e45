package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Uploads  UploadsConfig
	GeoIP    GeoIPConfig
	Redis    RedisConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type AdminConfig struct {
	// Password is the shared dashboard password. PasswordHash, when set,
	// takes precedence and is compared with bcrypt.
	Password       string
	PasswordHash   string
	JWTSecret      string
	JWTExpiryHours int
	// RefreshSeconds is the default dashboard auto-refresh interval
	// returned to clients. 0 disables polling.
	RefreshSeconds int
}

type UploadsConfig struct {
	Dir       string
	BackupDir string
	BaseURL   string
}

type GeoIPConfig struct {
	URL            string
	TimeoutSeconds int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MetricsConfig struct {
	APIKey string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, relying on environment variables: %v", err)
	}

	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ADMIN_JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("ADMIN_REFRESH_SECONDS", 5)
	viper.SetDefault("UPLOADS_DIR", "./uploads")
	viper.SetDefault("UPLOADS_BACKUP_DIR", "./backup/uploads")
	viper.SetDefault("GEOIP_URL", "https://ipwho.is")
	viper.SetDefault("GEOIP_TIMEOUT_SECONDS", 3)

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Admin: AdminConfig{
			Password:       viper.GetString("ADMIN_PASSWORD"),
			PasswordHash:   viper.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:      viper.GetString("JWT_SECRET"),
			JWTExpiryHours: viper.GetInt("ADMIN_JWT_EXPIRY_HOURS"),
			RefreshSeconds: viper.GetInt("ADMIN_REFRESH_SECONDS"),
		},
		Uploads: UploadsConfig{
			Dir:       viper.GetString("UPLOADS_DIR"),
			BackupDir: viper.GetString("UPLOADS_BACKUP_DIR"),
			BaseURL:   viper.GetString("UPLOADS_BASE_URL"),
		},
		GeoIP: GeoIPConfig{
			URL:            viper.GetString("GEOIP_URL"),
			TimeoutSeconds: viper.GetInt("GEOIP_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Metrics: MetricsConfig{
			APIKey: viper.GetString("METRICS_API_KEY"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Database URL: %s", func() string {
		if AppConfig.Database.URL != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Uploads Dir: %s", AppConfig.Uploads.Dir)
	log.Printf("- GeoIP URL: %s", AppConfig.GeoIP.URL)
	log.Printf("- Redis: %s", func() string {
		if AppConfig.Redis.Addr != "" {
			return AppConfig.Redis.Addr
		}
		return "disabled"
	}())
}
