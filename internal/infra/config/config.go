package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL       string
	HTTPAddress       string
	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	Issuer            string
	Audience          string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	RedisAddress      string
	RedisPassword     string
	RedisDB           int
	PasswordPepper    string
	CookieDomain      string
	AllowedOrigins    []string
	AllowCredentials  bool
}

var requiredKeys = []string{
	"DATABASE_URL",
	"JWT_PRIVATE_KEY_PATH",
	"JWT_PUBLIC_KEY_PATH",
	"JWT_ISSUER",
	"JWT_AUDIENCE",
	"ACCESS_TOKEN_TTL",
	"REFRESH_TOKEN_TTL",
	"REDIS_ADDRESS",
	"PASSWORD_PEPPER",
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range append(requiredKeys,
		"HTTP_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"COOKIE_DOMAIN", "ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
	) {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	for _, key := range requiredKeys {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("%s is not set", key)
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":8080")

	cfg := &Config{
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		HTTPAddress:       viper.GetString("HTTP_ADDRESS"),
		JWTPrivateKeyPath: viper.GetString("JWT_PRIVATE_KEY_PATH"),
		JWTPublicKeyPath:  viper.GetString("JWT_PUBLIC_KEY_PATH"),
		Issuer:            viper.GetString("JWT_ISSUER"),
		Audience:          viper.GetString("JWT_AUDIENCE"),
		AccessTokenTTL:    viper.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:   viper.GetDuration("REFRESH_TOKEN_TTL"),
		RedisAddress:      viper.GetString("REDIS_ADDRESS"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		PasswordPepper:    viper.GetString("PASSWORD_PEPPER"),
		CookieDomain:      viper.GetString("COOKIE_DOMAIN"),
		AllowedOrigins:    viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:  viper.GetBool("ALLOW_CREDENTIALS"),
	}

	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive durations")
	}
	if cfg.AccessTokenTTL >= cfg.RefreshTokenTTL {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be shorter than REFRESH_TOKEN_TTL")
	}

	return cfg, nil
}
