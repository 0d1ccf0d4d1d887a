package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gamestore/internal/security"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DbHost        string
	DbPort        string
	DbUser        string
	DbPass        string
	DbName        string
	DbSSLMode     string
	DbAutoMigrate bool

	SecretKey              string
	ResetSecretKey         string
	AccessTokenExpireMin   int
	ResetTokenExpireSec    int
	PasswordHashRounds     int
	ResetTokenInResponse   bool
	LoginRateLimitPerMin   int
	ForgotRateLimitPerHour int
	TrustedProxies         []string

	Log      string
	LogLevel string
	Env      string // dev|prod

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string

	FrontendURL string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует - чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:          def(os.Getenv("PORT"), "8080"),
		DbHost:        os.Getenv("DB_HOST"),
		DbPort:        def(os.Getenv("DB_PORT"), "5432"),
		DbUser:        os.Getenv("DB_USER"),
		DbPass:        os.Getenv("DB_PASSWORD"),
		DbName:        os.Getenv("DB_NAME"),
		DbSSLMode:     def(os.Getenv("DB_SSLMODE"), "disable"),
		DbAutoMigrate: def(os.Getenv("DB_AUTO_MIGRATE"), "false") == "true",

		SecretKey: def(os.Getenv("SECRET_KEY"), "your-secret-key-here-CHANGE-IN-PRODUCTION"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		FrontendURL: strings.TrimRight(os.Getenv("FRONTEND_URL"), "/"),
	}
	// секрет для сброса пароля по умолчанию совпадает с основным
	cfg.ResetSecretKey = def(os.Getenv("RESET_SECRET_KEY"), cfg.SecretKey)

	var err error
	if cfg.AccessTokenExpireMin, err = atoiDef("ACCESS_TOKEN_EXPIRE_MINUTES", 30); err != nil {
		return nil, err
	}
	if cfg.ResetTokenExpireSec, err = atoiDef("RESET_TOKEN_EXPIRE_SECONDS", 3600); err != nil {
		return nil, err
	}
	if cfg.PasswordHashRounds, err = atoiDef("PASSWORD_HASH_ROUNDS", security.DefaultPBKDF2Rounds); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimitPerMin, err = atoiDef("LOGIN_RATE_LIMIT_PER_MIN", 10); err != nil {
		return nil, err
	}
	if cfg.ForgotRateLimitPerHour, err = atoiDef("FORGOT_RATE_LIMIT_PER_HOUR", 5); err != nil {
		return nil, err
	}
	// IP/CIDR балансировщиков, которым можно верить в X-Forwarded-For
	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, p)
		}
	}
	// старый клиент ждёт reset_token прямо в ответе, пока нет почты
	cfg.ResetTokenInResponse = def(os.Getenv("RESET_TOKEN_IN_RESPONSE"), "false") == "true"

	return cfg, nil
}

func atoiDef(key string, d int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.SecretKey) == "" {
		return nil, fmt.Errorf("SECRET_KEY is empty")
	}
	if strings.Contains(c.SecretKey, "CHANGE-IN-PRODUCTION") {
		if c.Env == "prod" {
			return nil, fmt.Errorf("SECRET_KEY is the built-in default")
		}
		warnings = append(warnings, "SECRET_KEY is the built-in default")
	}
	if c.ResetSecretKey == c.SecretKey {
		warnings = append(warnings, "RESET_SECRET_KEY is not set, falling back to SECRET_KEY")
	}

	if c.AccessTokenExpireMin <= 0 || c.ResetTokenExpireSec <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}

	if c.SMTPHost == "" || c.SMTPUser == "" {
		warnings = append(warnings, "SMTP is not fully configured")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMin) * time.Minute
}

func (c *Config) ResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenExpireSec) * time.Second
}

// SecurityKeys собирает неизменяемый набор ключей для security.TokenService.
func (c *Config) SecurityKeys() security.Keys {
	return security.Keys{
		SessionSecret: []byte(c.SecretKey),
		ResetSecret:   []byte(c.ResetSecretKey),
		SessionTTL:    c.AccessTokenTTL(),
		ResetMaxAge:   c.ResetTokenTTL(),
	}
}

// GetDSN - полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe - DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
