package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Groq   GroqConfig
	JWT    JWTConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GroqConfig configures the outbound text-generation client. Groq exposes an
// OpenAI-compatible API, so BaseURL points at their /openai/v1 endpoint.
type GroqConfig struct {
	APIKey              string        `yaml:"api_key"`
	Model               string        `yaml:"model"`
	BaseURL             string        `yaml:"base_url"`
	MaxContextChars     int           `yaml:"max_context_chars"`
	MaxCompletionTokens int           `yaml:"max_completion_tokens"`
	Timeout             time.Duration `yaml:"timeout"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

// CacheConfig bounds the extracted-text cache: entries expire after TextTTL
// and stored text is capped at MaxTextBytes.
type CacheConfig struct {
	TextTTL      time.Duration `yaml:"text_ttl"`
	MaxTextBytes int           `yaml:"max_text_bytes"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine; defaults plus environment
		// variables carry a container deployment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("mongo.uri"),
			Database: viper.GetString("mongo.database"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Groq: GroqConfig{
			APIKey:              viper.GetString("groq.api_key"),
			Model:               viper.GetString("groq.model"),
			BaseURL:             viper.GetString("groq.base_url"),
			MaxContextChars:     viper.GetInt("groq.max_context_chars"),
			MaxCompletionTokens: viper.GetInt("groq.max_completion_tokens"),
			Timeout:             viper.GetDuration("groq.timeout") * time.Second,
		},
		JWT: JWTConfig{
			Secret: viper.GetString("jwt.secret"),
			TTL:    viper.GetDuration("jwt.ttl_hours") * time.Hour,
		},
		Cache: CacheConfig{
			TextTTL:      viper.GetDuration("cache.text_ttl_minutes") * time.Minute,
			MaxTextBytes: viper.GetInt("cache.max_text_bytes"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables win over the config file for deployment secrets.
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Mongo.URI = uri
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		config.Mongo.Database = db
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		config.Groq.APIKey = apiKey
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.Secret = secret
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 5001)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit", 10*1024*1024)
	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.max_context_chars", 6000)
	viper.SetDefault("groq.max_completion_tokens", 1024)
	viper.SetDefault("groq.timeout", 60)
	viper.SetDefault("jwt.ttl_hours", 168)
	viper.SetDefault("cache.text_ttl_minutes", 60)
	viper.SetDefault("cache.max_text_bytes", 512*1024)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}
