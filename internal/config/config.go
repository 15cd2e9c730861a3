package config

import (
	"log"
	"os"
	"strconv"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

type Config struct {
	MediumDepth      int
	HardDepth        int
	SelfplayGames    int
	RedDifficulty    domain.Difficulty
	YellowDifficulty domain.Difficulty
}

func LoadConfig() *Config {
	mediumDepth := GetEnvAsInt("MINIMAX_MEDIUM_DEPTH", 3)
	hardDepth := GetEnvAsInt("MINIMAX_HARD_DEPTH", 5)

	selfplayGames := GetEnvAsInt("SELFPLAY_GAMES", 10)
	redDifficulty := domain.Difficulty(GetEnv("SELFPLAY_RED", string(domain.DifficultyMedium)))
	yellowDifficulty := domain.Difficulty(GetEnv("SELFPLAY_YELLOW", string(domain.DifficultyEasy)))

	return &Config{
		MediumDepth:      mediumDepth,
		HardDepth:        hardDepth,
		SelfplayGames:    selfplayGames,
		RedDifficulty:    redDifficulty,
		YellowDifficulty: yellowDifficulty,
	}
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
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
