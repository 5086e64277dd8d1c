package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port     int `env:"PORT" env-default:"8080"`
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Uploads  UploadsConfig
}

type DatabaseConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST"`
	Name     string `env:"DB_NAME"`
	Port     int    `env:"DB_PORT"`
	SSLMode  string `env:"DB_SSLMODE"`
}

type OpenAIConfig struct {
	APIKey          string        `env:"OPENAI_API_KEY"`
	BaseURL         string        `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
	TranscribeModel string        `env:"OPENAI_MODEL_TRANSCRIBE" env-default:"whisper-1"`
	SummaryModel    string        `env:"OPENAI_MODEL_SUMMARY" env-default:"gpt-4"`
	RequestTimeout  time.Duration `env:"OPENAI_REQUEST_TIMEOUT" env-default:"2m"`
}

type UploadsConfig struct {
	Dir      string `env:"UPLOAD_DIR" env-default:"recordings"`
	MaxBytes int64  `env:"MAX_UPLOAD_BYTES" env-default:"26214400"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}

	return &cfg
}
