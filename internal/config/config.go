package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"barber-accounts"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	ServerPort string `env:"PORT" envDefault:"8080"`
	Timezone   string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`

	DBUrl string `env:"DATABASE_URL,required,notEmpty"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	Mail Mail

	CheckEmailDomain   bool   `env:"CHECK_EMAIL_DOMAIN" envDefault:"false"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	RedisURL        string        `env:"REDIS_URL"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"10"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	S3 S3
}

// Mail holds the SMTP credentials used for confirmation emails.
type Mail struct {
	User        string `env:"MAIL_USER,required,notEmpty"`
	Password    string `env:"MAIL_PASSWORD,required,notEmpty"`
	From        string `env:"MAIL_FROM"`
	Host        string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	SendEnabled bool   `env:"MAIL_SEND_ENABLED" envDefault:"true"`
}

// S3 is optional; avatar upload stays disabled while Bucket is empty.
type S3 struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

// Load reads .env (when present) and the process environment. It fails when
// a required variable is missing or a value is malformed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = fmt.Sprintf("%q <%s>", "Barbershop", cfg.Mail.User)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		errs = append(errs, errors.New("SMTP_PORT must be a valid port"))
	}
	if c.S3.Bucket != "" && (c.S3.AccessKey == "" || c.S3.SecretKey == "") {
		errs = append(errs, errors.New("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_BUCKET is set"))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AvatarsEnabled() bool {
	return c.S3.Bucket != ""
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
