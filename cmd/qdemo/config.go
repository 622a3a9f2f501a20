package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/qlath/gates"
)

// Config holds the demo configuration
type Config struct {
	Shots    int
	Seed     int64
	Qubits   int
	Phase    float64
	LogLevel string
	Pretty   bool
}

// Load reads .env (if present) and QDEMO_* environment variables, then lets
// command-line flags override them.
func Load(args []string, stderr io.Writer) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Shots:    getEnvAsInt("QDEMO_SHOTS", 1000),
		Seed:     int64(getEnvAsInt("QDEMO_SEED", 1)),
		Qubits:   getEnvAsInt("QDEMO_QUBITS", 3),
		Phase:    getEnvAsFloat("QDEMO_PHASE", math.Pi/2),
		LogLevel: getEnv("QDEMO_LOG_LEVEL", "info"),
		Pretty:   getEnvAsBool("QDEMO_PRETTY", false),
	}

	fs := pflag.NewFlagSet("qdemo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&cfg.Shots, "shots", "s", cfg.Shots, "shots per sampled circuit")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 selects the default seed)")
	fs.IntVarP(&cfg.Qubits, "qubits", "n", cfg.Qubits, "GHZ register size")
	fs.Float64Var(&cfg.Phase, "phase", cfg.Phase, "GHZ relative phase in radians")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, error")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "console log output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges the demo relies on
func (c *Config) Validate() error {
	if c.Shots < 1 {
		return fmt.Errorf("shots must be > 0, got %d", c.Shots)
	}
	if c.Qubits < 1 || c.Qubits > gates.MaxQubits {
		return fmt.Errorf("qubits must be in [1, %d], got %d", gates.MaxQubits, c.Qubits)
	}
	if math.IsNaN(c.Phase) || math.IsInf(c.Phase, 0) {
		return fmt.Errorf("phase must be finite")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
