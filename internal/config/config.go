package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config はサーバー全体の設定です。
// 優先順位は 環境変数 > YAML ファイル > 既定値 です。
type Config struct {
	AppEnv        string        `yaml:"appEnv"`
	Port          string        `yaml:"port"`
	GeminiAPIKey  string        `yaml:"geminiApiKey"`
	GeminiModel   string        `yaml:"geminiModel"`
	GeminiBaseURL string        `yaml:"geminiBaseUrl"`
	GeminiTimeout time.Duration `yaml:"geminiTimeout"`
	FetchTimeout  time.Duration `yaml:"fetchTimeout"`
	MaxUploadMB   int64         `yaml:"maxUploadMb"`
	SampleImages  []string      `yaml:"sampleImages"`
}

// Default は既定値で埋めた Config を返します。
func Default() *Config {
	return &Config{
		AppEnv:        "development",
		Port:          "8080",
		GeminiModel:   "gemini-2.5-flash",
		GeminiTimeout: 60 * time.Second,
		FetchTimeout:  30 * time.Second,
		MaxUploadMB:   20,
	}
}

// Load は .env、YAML ファイル (POEM_CONFIG または path)、環境変数の順に読み込みます。
// API キーが無くてもエラーにはしません。生成リクエスト時に ConfigurationError になります。
func Load(path string) (*Config, error) {
	// .env は存在しなくてもよい
	_ = godotenv.Load()

	cfg := Default()

	if p := getEnv("POEM_CONFIG", path); p != "" {
		if err := cfg.mergeFile(p); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("設定ファイルの解析に失敗しました (%s): %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.Port = getEnv("PORT", c.Port)
	// API_KEY もフォールバックとして受け付ける
	c.GeminiAPIKey = strings.TrimSpace(getEnv("GEMINI_API_KEY", getEnv("API_KEY", c.GeminiAPIKey)))
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)
	c.GeminiBaseURL = getEnv("GEMINI_BASE_URL", c.GeminiBaseURL)
	c.GeminiTimeout = getEnvSeconds("GEMINI_TIMEOUT_SECONDS", c.GeminiTimeout)
	c.FetchTimeout = getEnvSeconds("FETCH_TIMEOUT_SECONDS", c.FetchTimeout)
	c.MaxUploadMB = int64(getEnvInt("MAX_UPLOAD_MB", int(c.MaxUploadMB)))
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.GeminiTimeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// Addr は listen アドレスを返します。
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsDevelopment は開発環境かどうかを返します。
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
