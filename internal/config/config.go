// Package config предоставляет структуры и функцию для загрузки конфига
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string        `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string        `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string        `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	GRPCAuthAddress         string        `yaml:"grpc_auth_address" env:"GRPC_AUTH_ADDRESS"`
	RemoteAuth              bool          `yaml:"remote_auth" env:"REMOTE_AUTH" env-default:"false"`
	RequestTimeout          time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"5s"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Razorpay                `yaml:"razorpay"`
	Email                   `yaml:"email"`
	SMTP                    `yaml:"smtp"`
	RabbitMQ                `yaml:"rabbitmq"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	RateLimit   float64       `yaml:"rate_limit" env-default:"5"`
	RateBurst   int           `yaml:"rate_burst" env-default:"10"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Razorpay настройки платёжного шлюза
type Razorpay struct {
	KeyID          string        `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret      string        `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	APIURL         string        `yaml:"api_url" env-default:"https://api.razorpay.com/v1"`
	CompanyName    string        `yaml:"company_name" env-default:"Manoj Technologies"`
	ThemeColor     string        `yaml:"theme_color" env-default:"#2563eb"`
	Currency       string        `yaml:"currency" env-default:"INR"`
	GatewayTimeout time.Duration `yaml:"timeout" env-default:"10s"`
	CheckoutTTL    time.Duration `yaml:"checkout_ttl" env-default:"30m"`
}

// Email настройки отправки писем
type Email struct {
	// Provider: postmark, mailjet, smtp, queue или пусто (письма только журналируются)
	Provider     string            `yaml:"provider" env:"EMAIL_PROVIDER"`
	ServerToken  string            `yaml:"server_token" env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string            `yaml:"account_token" env:"POSTMARK_ACCOUNT_TOKEN"`
	PublicKey    string            `yaml:"public_key" env:"MAILJET_PUBLIC_KEY"`
	PrivateKey   string            `yaml:"private_key" env:"MAILJET_PRIVATE_KEY"`
	Sender       string            `yaml:"sender" env:"EMAIL_SENDER"`
	AdminEmail   string            `yaml:"admin_email" env:"EMAIL_ADMIN"`
	LoginURL     string            `yaml:"login_url" env-default:"https://example.com/login"`
	Templates    map[string]string `yaml:"templates"`
	EmailTimeout time.Duration     `yaml:"timeout" env-default:"10s"`
}

// SMTP настройки SMTP для воркера рассылки
type SMTP struct {
	SMTPHost string `yaml:"host" env:"SMTP_HOST"`
	SMTPPort string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"user" env:"SMTP_USER"`
	SMTPPass string `yaml:"pass" env:"SMTP_PASS"`
}

// RabbitMQ настройки подключения к брокеру
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"url" env:"RABBITMQ_URL"`
	RabbitMQMaxRetries int           `yaml:"max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// MustLoad загружает .env (если есть) и YAML-конфиг по пути из CONFIG_PATH.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load читает конфиг и возвращает ошибку вместо завершения процесса.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read .env: %w", err)
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file: %s - does not exist", configPath)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, nil
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"MigrationsPath: %s\n"+
			"GRPCAuthAddress: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Razorpay:\n"+
			"  KeyID: %s\n"+
			"Email:\n"+
			"  Provider: %s\n",
		c.Env,
		c.MigrationsPath,
		c.GRPCAuthAddress,
		c.AddressRedis,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.KeyID,
		c.Provider,
	)
}
