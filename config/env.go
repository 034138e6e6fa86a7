package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	JWTSecret          string
	JWTExpiry          string
	AdminPhone         string
	StoreLat           float64
	StoreLon           float64
	ServiceRadiusMiles float64
	GeocoderBaseURL    string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "maxcleaners"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		JWTExpiry:          getEnv("JWT_EXPIRY", "24h"),
		AdminPhone:         getEnv("ADMIN_PHONE", "0000000000"),
		StoreLat:           getEnvFloat("STORE_LAT", 40.7128),
		StoreLon:           getEnvFloat("STORE_LON", -74.0060),
		ServiceRadiusMiles: getEnvFloat("SERVICE_RADIUS_MILES", 10),
		GeocoderBaseURL:    getEnv("GEOCODER_BASE_URL", "https://geocoding.geo.census.gov"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid value for %s, using default %v", key, defaultValue)
		return defaultValue
	}
	return parsed
}
