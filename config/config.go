package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// feel of the game and where it keeps its state.
var (
	FrameRate = getEnvInt("FRAME_RATE", 30)

	FoodWidth  = getEnvInt("FOOD_WIDTH", 40)
	FoodHeight = getEnvInt("FOOD_HEIGHT", 40)
	WallWidth  = getEnvInt("WALL_WIDTH", 80)
	WallHeight = getEnvInt("WALL_HEIGHT", 80)

	PinchCooldown = getEnvDuration("PINCH_COOLDOWN_MS", 500*time.Millisecond)
	FistCooldown  = getEnvDuration("FIST_COOLDOWN_MS", 1000*time.Millisecond)
	PinchRate     = rate.Every(PinchCooldown)
	FistRate      = rate.Every(FistCooldown)

	HighScoreBackend = getEnvString("HIGHSCORE_BACKEND", "file")
	HighScoreArgs    = getEnvString("HIGHSCORE_ARGS", "")

	LogLevel = getEnvString("LOG_LEVEL", "info")

	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 4)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 2)
)

// FrameInterval is the time between two frames at FrameRate.
func FrameInterval() time.Duration {
	if FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(FrameRate)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// getEnvDuration reads a whole number of milliseconds.
func getEnvDuration(varName string, defaults time.Duration) time.Duration {
	ms := getEnvInt(varName, -1)
	if ms < 0 {
		return defaults
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnvString(varName, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
