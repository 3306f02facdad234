package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	TickInterval      time.Duration
	Seed              uint64
	PlacementAttempts int
	SnapshotCodec     string
	BroadcastEvery    int
}

// Load reads .env (if present) and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println(err)
	}

	cfg := Config{
		Port:          "8080",
		TickInterval:  100 * time.Millisecond,
		SnapshotCodec: "json",
	}

	if port, err := GetEnvVariable("PORT"); err == nil {
		cfg.Port = port
	} else {
		log.Println("PORT environment variable not set")
		log.Printf("Using default port %s", cfg.Port)
	}

	tickMS, err := intVar("TICK_MS", 100)
	if err != nil {
		return Config{}, err
	}
	if tickMS <= 0 {
		return Config{}, fmt.Errorf("TICK_MS must be positive, got %d", tickMS)
	}
	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond

	if v, err := GetEnvVariable("SEED"); err == nil {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if cfg.PlacementAttempts, err = intVar("PLACEMENT_ATTEMPTS", 10000); err != nil {
		return Config{}, err
	}
	if cfg.BroadcastEvery, err = intVar("BROADCAST_EVERY", 1); err != nil {
		return Config{}, err
	}
	if cfg.BroadcastEvery <= 0 {
		cfg.BroadcastEvery = 1
	}

	if codec, err := GetEnvVariable("SNAPSHOT_CODEC"); err == nil {
		cfg.SnapshotCodec = codec
	}
	return cfg, nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

func intVar(name string, def int) (int, error) {
	v, err := GetEnvVariable(name)
	if err != nil {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
