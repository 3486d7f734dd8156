package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	defer os.Unsetenv("SNAKE_TEST_INT")

	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))

	os.Setenv("SNAKE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))

	os.Setenv("SNAKE_TEST_INT", "forty-two")
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	defer os.Unsetenv("SNAKE_TEST_MS")

	require.Equal(t, 200*time.Millisecond, getEnvDuration("SNAKE_TEST_MS", 200))

	os.Setenv("SNAKE_TEST_MS", "150")
	require.Equal(t, 150*time.Millisecond, getEnvDuration("SNAKE_TEST_MS", 200))
}
