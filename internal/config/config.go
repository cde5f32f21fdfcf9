package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sam-patel-1289/crossfire-codenames/internal/room"
)

// Config is read once at startup from the environment (a local .env file is
// honored when present).
type Config struct {
	Addr string
	// BaseURL is the externally visible origin, used to build join links.
	BaseURL string
	Dev     bool

	Timeouts room.Timeouts
}

func Load() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := Config{
		Addr:     getenv("ADDR", ":8080"),
		BaseURL:  getenv("BASE_URL", "http://localhost:8080"),
		Dev:      os.Getenv("DEV") == "1",
		Timeouts: room.DefaultTimeouts(),
	}

	var err error
	if cfg.Timeouts.JoinWait, err = duration("JOIN_WAIT", cfg.Timeouts.JoinWait); err != nil {
		return Config{}, err
	}
	if cfg.Timeouts.HostGrace, err = duration("HOST_GRACE", cfg.Timeouts.HostGrace); err != nil {
		return Config{}, err
	}
	if cfg.Timeouts.SlotGrace, err = duration("SLOT_GRACE", cfg.Timeouts.SlotGrace); err != nil {
		return Config{}, err
	}
	if cfg.Timeouts.Idle, err = duration("ROOM_IDLE", cfg.Timeouts.Idle); err != nil {
		return Config{}, err
	}

	if cfg.Timeouts.JoinWait <= 0 {
		return Config{}, fmt.Errorf("JOIN_WAIT must be positive, got %s", cfg.Timeouts.JoinWait)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
