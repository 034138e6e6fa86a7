package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the optional Redis instance used for the token
// blacklist. When Redis is unreachable the app falls back to the in-memory
// blacklist, so a failed connection is not fatal.
func InitRedis() {
	var opt *redis.Options
	switch {
	case AppConfig.RedisURL != "":
		parsedOpt, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running with in-memory token blacklist")
			return
		}
		opt = parsedOpt
	case AppConfig.RedisAddr != "":
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("Redis not configured, running with in-memory token blacklist")
		return
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running with in-memory token blacklist")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
