package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Store   StoreConfig
	CV      CVConfig
	Refresh RefreshConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	Username       string
	APIURL         string
	RequestTimeout time.Duration
}

type StoreConfig struct {
	Driver        string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type CVConfig struct {
	Path     string
	Filename string
}

type RefreshConfig struct {
	Interval time.Duration
}

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		GitHub: GitHubConfig{
			Username:       getEnv("GITHUB_USERNAME", "Akib-Osmani"),
			APIURL:         getEnv("GITHUB_API_URL", "https://api.github.com/"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", StoreDriverSQLite),
			Path:          getEnv("DB_PATH", "./gfolio.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		CV: CVConfig{
			Path:     getEnv("CV_PATH", "assets/cv/Akib_Osmani_CV.pdf"),
			Filename: getEnv("CV_FILENAME", "Akib_Osmani_CV.pdf"),
		},
		Refresh: RefreshConfig{
			Interval: getEnvAsDuration("REFRESH_INTERVAL", 25*time.Minute),
		},
	}

	AppConfig.GitHub.RequestTimeout = clampRequestTimeout(
		AppConfig.GitHub.RequestTimeout,
		time.Duration(AppConfig.Server.WriteTimeout)*time.Second,
	)

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("25m", "0") and falls back
// to the default on anything unparsable.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// clampRequestTimeout keeps GitHub calls shorter than the server's write
// deadline so a slow upstream still leaves time to send the fallback page.
func clampRequestTimeout(request, write time.Duration) time.Duration {
	if write <= 0 {
		return request
	}
	limit := write * 2 / 3
	if request <= 0 || request > limit {
		log.Printf("REQUEST_TIMEOUT %s exceeds the write deadline, using %s", request, limit)
		return limit
	}
	return request
}
