package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"bunk-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

const settingsKey = "bunk:settings"
const settingsTTL = 10 * time.Minute

// Init connects to Redis when REDIS_SERVICE_HOST is set. The cache is
// optional: without it every settings read goes to Postgres, which is
// fine for a single outlet.
func Init() {
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		log.Println("[Cache] REDIS_SERVICE_HOST not set, settings cache disabled")
		return
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Cache] Redis unreachable, settings cache disabled: %v", err)
		return
	}

	redisClient = client
	log.Printf("[Cache] Connected to Redis at %s:%s", host, port)
}

// GetCachedSettings returns cached settings, or nil on miss or when the
// cache is disabled.
func GetCachedSettings(ctx context.Context) *models.Settings {
	if redisClient == nil {
		return nil
	}

	raw, err := redisClient.Get(ctx, settingsKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[Cache] Settings read failed: %v", err)
		}
		return nil
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("[Cache] Corrupt cached settings, dropping: %v", err)
		redisClient.Del(ctx, settingsKey)
		return nil
	}
	return &settings
}

// CacheSettings stores settings with a short TTL. Best effort.
func CacheSettings(ctx context.Context, settings *models.Settings) {
	if redisClient == nil {
		return
	}
	encoded, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := redisClient.Set(ctx, settingsKey, encoded, settingsTTL).Err(); err != nil {
		log.Printf("[Cache] Settings write failed: %v", err)
	}
}

// InvalidateSettings drops the cached settings after a save.
func InvalidateSettings(ctx context.Context) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Del(ctx, settingsKey).Err(); err != nil {
		log.Printf("[Cache] Settings invalidate failed: %v", err)
	}
}
