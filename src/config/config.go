package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither a config file, an env file nor a flag sets a value.
const (
	MinFloor   = 0
	MaxFloor   = 10
	StartFloor = 0
	DwellTicks = 1
	MaxTicks   = 30
	LogLevel   = "info"
)

// Env keys read by LoadEnv.
const (
	EnvMinFloor   = "ELEVSIM_MIN_FLOOR"
	EnvMaxFloor   = "ELEVSIM_MAX_FLOOR"
	EnvStartFloor = "ELEVSIM_START_FLOOR"
	EnvDwellTicks = "ELEVSIM_DWELL_TICKS"
	EnvMaxTicks   = "ELEVSIM_MAX_TICKS"
	EnvLogLevel   = "ELEVSIM_LOG_LEVEL"
	EnvLogFile    = "ELEVSIM_LOG_FILE"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	MinFloor   int    `yaml:"min_floor"`
	MaxFloor   int    `yaml:"max_floor"`
	StartFloor int    `yaml:"start_floor"`
	DwellTicks int    `yaml:"dwell_ticks"`
	MaxTicks   int    `yaml:"max_ticks"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		MinFloor:   MinFloor,
		MaxFloor:   MaxFloor,
		StartFloor: StartFloor,
		DwellTicks: DwellTicks,
		MaxTicks:   MaxTicks,
		LogLevel:   LogLevel,
	}
}

// Load decodes a YAML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

// LoadEnv overrides c from a dotenv file and then from the process environment.
// An empty path skips the file.
func (c *Config) LoadEnv(path string) error {
	env := map[string]string{}
	if path != "" {
		var err error
		if env, err = godotenv.Read(path); err != nil {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
	}
	for _, key := range []string{EnvMinFloor, EnvMaxFloor, EnvStartFloor, EnvDwellTicks, EnvMaxTicks, EnvLogLevel, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return c.ApplyEnv(env)
}

// ApplyEnv overrides the fields whose keys are present in env.
func (c *Config) ApplyEnv(env map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMinFloor, &c.MinFloor},
		{EnvMaxFloor, &c.MaxFloor},
		{EnvStartFloor, &c.StartFloor},
		{EnvDwellTicks, &c.DwellTicks},
		{EnvMaxTicks, &c.MaxTicks},
	}
	for _, field := range ints {
		v, ok := env[field.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, field.key, v)
		}
		*field.dst = n
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.LogLevel = v
	}
	if v, ok := env[EnvLogFile]; ok {
		c.LogFile = v
	}
	return nil
}

// Validate checks the building layout and run limits. Dwell below 1 is accepted and raised later.
func (c Config) Validate() error {
	if c.MinFloor > c.MaxFloor {
		return fmt.Errorf("%w: min floor %d > max floor %d", ErrInvalidConfig, c.MinFloor, c.MaxFloor)
	}
	if c.StartFloor < c.MinFloor || c.StartFloor > c.MaxFloor {
		return fmt.Errorf("%w: start floor %d outside [%d, %d]", ErrInvalidConfig, c.StartFloor, c.MinFloor, c.MaxFloor)
	}
	if c.MaxTicks < 1 {
		return fmt.Errorf("%w: max ticks %d < 1", ErrInvalidConfig, c.MaxTicks)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
