package config

import (
	env_utils "logquery/internal/util/env"
	"logquery/internal/util/logger"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting       bool
	EnvMode         env_utils.EnvMode `env:"ENV_MODE"          env-default:"development"`
	BackendRootPath string            `env:"BACKEND_ROOT_PATH"`
	HTTPPort        string            `env:"HTTP_PORT"         env-default:"4005"`
	// log service
	LogServiceURL     string        `env:"LOG_SERVICE_URL"     env-required:"true"`
	LogServiceTimeout time.Duration `env:"LOG_SERVICE_TIMEOUT" env-default:"30s"`
	// sessions
	SessionIdleTTL         time.Duration `env:"SESSION_IDLE_TTL"          env-default:"30m"`
	FilterChangesPerSecond int           `env:"FILTER_CHANGES_PER_SECOND" env-default:"20"`
	FilterChangesBurst     int           `env:"FILTER_CHANGES_BURST"      env-default:"40"`
	DateTimezone           string        `env:"DATE_TIMEZONE"             env-default:""`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

// DateLocation resolves DATE_TIMEZONE, falling back to the host zone.
func (e EnvVariables) DateLocation() *time.Location {
	if e.DateTimezone == "" {
		return time.Local
	}

	location, err := time.LoadLocation(e.DateTimezone)
	if err != nil {
		log.Warn("DATE_TIMEZONE is invalid, using local timezone",
			"timezone", e.DateTimezone, "error", err)
		return time.Local
	}

	return location
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			loaded = true
			break
		}
	}

	// the viewer is commonly configured through the environment alone
	if !loaded {
		log.Warn("No .env file found, reading configuration from environment only")
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.BackendRootPath == "" {
		env.BackendRootPath = backendRoot
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	env.LogServiceURL = strings.TrimRight(env.LogServiceURL, "/")
	if env.LogServiceURL == "" {
		log.Error("LOG_SERVICE_URL is empty")
		os.Exit(1)
	}

	if env.LogServiceTimeout <= 0 {
		log.Error("LOG_SERVICE_TIMEOUT must be positive", "timeout", env.LogServiceTimeout)
		os.Exit(1)
	}

	if env.FilterChangesPerSecond <= 0 || env.FilterChangesBurst <= 0 {
		log.Error("FILTER_CHANGES_PER_SECOND and FILTER_CHANGES_BURST must be positive",
			"perSecond", env.FilterChangesPerSecond, "burst", env.FilterChangesBurst)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!")
}
