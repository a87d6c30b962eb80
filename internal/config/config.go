package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	SearchDepth  int
	Simulations  int
	Seed         uint64
	EngineStarts bool
	LogLevel     zerolog.Level

	ArenaGames       int
	ArenaWorkers     int
	ArenaDepth       int
	ArenaSimulations int
}

var AppConfig *Config

func LoadConfig() *Config {
	// Engine
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 6)
	simulations := GetEnvAsInt("SIMULATION_SIZE", 100)
	seed := GetEnvAsUint64("ENGINE_SEED", 0)
	engineStarts := GetEnvAsBool("ENGINE_STARTS", false)

	level, err := zerolog.ParseLevel(strings.ToLower(GetEnv("LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("value", GetEnv("LOG_LEVEL", "")).Msg("invalid LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}

	// Self-play
	arenaGames := GetEnvAsInt("ARENA_GAMES", 20)
	arenaWorkers := GetEnvAsInt("ARENA_WORKERS", 4)
	arenaDepth := GetEnvAsInt("ARENA_DEPTH", 4)
	arenaSimulations := GetEnvAsInt("ARENA_SIMULATIONS", 50)

	AppConfig = &Config{
		SearchDepth:      positive("SEARCH_DEPTH", searchDepth, 6),
		Simulations:      positive("SIMULATION_SIZE", simulations, 100),
		Seed:             seed,
		EngineStarts:     engineStarts,
		LogLevel:         level,
		ArenaGames:       positive("ARENA_GAMES", arenaGames, 20),
		ArenaWorkers:     positive("ARENA_WORKERS", arenaWorkers, 4),
		ArenaDepth:       positive("ARENA_DEPTH", arenaDepth, 4),
		ArenaSimulations: positive("ARENA_SIMULATIONS", arenaSimulations, 50),
	}

	return AppConfig
}

func positive(key string, value, defaultValue int) int {
	if value < 1 {
		log.Warn().Str("key", key).Int("value", value).Int("default", defaultValue).Msg("value must be positive, using default")
		return defaultValue
	}
	return value
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Uint64("default", defaultValue).Msg("invalid unsigned integer, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean, using default")
		return defaultValue
	}
	return value
}
