package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	ServiceName   string        `yaml:"service_name" env:"SERVICE_NAME" env-default:"marketplace"`
	CurrentUserID int64         `yaml:"current_user_id" env:"CURRENT_USER_ID" env-default:"99"`
	HTTP          HTTPConfig    `yaml:"http"`
	Storage       StorageConfig `yaml:"storage"`
	MongoDB       MongoDBConfig `yaml:"mongo"`
	Redis         RedisConfig   `yaml:"redis"`
	NATS          NATSConfig    `yaml:"nats"`
	Logger        LoggerConfig  `yaml:"logger"`
	SMTP          SMTPConfig    `yaml:"smtp"`
	MinIO         MinIOConfig   `yaml:"minio"`
	Payment       PaymentConfig `yaml:"payment"`
	Auth          AuthConfig    `yaml:"auth"`
	Tracing       TracingConfig `yaml:"tracing"`
	Catalog       CatalogConfig `yaml:"catalog"`
	Tasks         TasksConfig   `yaml:"tasks"`
	Cart          CartConfig    `yaml:"cart"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT_MARKETPLACE" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	TimeoutGraceful time.Duration `yaml:"timeout_graceful_shutdown" env-default:"15s"`
}

type StorageConfig struct {
	// Driver selects the conversation store: memory or mongo.
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Mirror bool   `yaml:"mirror" env:"STORAGE_MIRROR" env-default:"false"`
}

type MongoDBConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	User     string `yaml:"user" env:"MONGO_USER"`
	Password string `yaml:"password" env:"MONGO_PASSWORD"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"marketplace_db"`

	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type NATSConfig struct {
	URL     string `yaml:"url" env:"NATS_URL"`
	Enabled bool   `yaml:"enabled" env:"NATS_ENABLED" env-default:"false"`
	// SubjectPrefix namespaces every published subject, e.g. "staging".
	SubjectPrefix  string        `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX"`
	ClientName     string        `yaml:"client_name" env:"NATS_CLIENT_NAME" env-default:"marketplace-service"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"NATS_CONNECT_TIMEOUT" env-default:"5s"`
	MaxReconnects  int           `yaml:"max_reconnects" env:"NATS_MAX_RECONNECTS" env-default:"5"`
	ReconnectWait  time.Duration `yaml:"reconnect_wait" env:"NATS_RECONNECT_WAIT" env-default:"2s"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type SMTPConfig struct {
	Host         string        `yaml:"host" env:"SMTP_HOST"`
	Port         int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username     string        `yaml:"username" env:"SMTP_USERNAME"`
	Password     string        `yaml:"password" env:"SMTP_PASSWORD"`
	SenderEmail  string        `yaml:"sender_email" env:"SMTP_SENDER_EMAIL" env-default:"no-reply@marketplace.local"`
	Encryption   string        `yaml:"encryption" env:"SMTP_ENCRYPTION" env-default:"tls"`
	ServerName   string        `yaml:"server_name" env:"SMTP_SERVER_NAME"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SMTP_WRITE_TIMEOUT" env-default:"10s"`
}

type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"marketplace-photos"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
}

type PaymentConfig struct {
	Latency time.Duration `yaml:"latency" env:"PAYMENT_LATENCY" env-default:"1500ms"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me"`
}

type TracingConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type CatalogConfig struct {
	// Categories overrides the built-in category -> subcategories table when set.
	Categories map[string][]string `yaml:"categories"`
}

type TasksConfig struct {
	Enabled     bool `yaml:"enabled" env:"TASKS_ENABLED" env-default:"false"`
	Concurrency int  `yaml:"concurrency" env:"TASKS_CONCURRENCY" env-default:"5"`
}

type CartConfig struct {
	// Driver selects the cart store: memory or redis.
	Driver string        `yaml:"driver" env:"CART_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"CART_TTL" env-default:"24h"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH_MARKETPLACE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
