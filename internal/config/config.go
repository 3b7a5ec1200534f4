package config

import (
	"os"
	"strconv"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/constants"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	SecretKey     string
	GinMode       string
	ListenAddr    string
	BaseURL       string
	PictureDir    string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	MailSender    string
	ResetTokenTTL int
	SeedOnStart   bool
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "followthefood"),
		DBPassword:    getEnv("DB_PASSWORD", "followthefood"),
		DBName:        getEnv("DB_NAME", "followthefood"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SecretKey:     getEnv("SECRET_KEY", "default-signing-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		PictureDir:    getEnv("PICTURE_DIR", "static/profile_pics"),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		MailSender:    getEnv("MAIL_SENDER", "noreply@followthefood.local"),
		ResetTokenTTL: getEnvInt("RESET_TOKEN_TTL", constants.DefaultResetTokenTTLSeconds),
		SeedOnStart:   getEnv("DB_SEED", "") == "1",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
