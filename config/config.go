package config

import (
	"os"
	"strconv"
	"time"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of the game and its stores.
var (
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 5)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 2)

	StartSpeed   = getEnvDuration("SNAKE_START_SPEED_MS", 200)
	MinSpeed     = getEnvDuration("SNAKE_MIN_SPEED_MS", 50)
	SpeedStep    = getEnvDuration("SNAKE_SPEED_STEP_MS", 10)
	FoodAttempts = getEnvInt("SNAKE_FOOD_ATTEMPTS", 100)
	NotifyHold   = getEnvDuration("SNAKE_NOTIFY_HOLD_MS", 2000)
)

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

func getEnvDuration(varName string, defaultMS int) time.Duration {
	return time.Duration(getEnvInt(varName, defaultMS)) * time.Millisecond
}
