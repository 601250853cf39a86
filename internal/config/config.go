package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DevelopmentJWTSecret signs tokens when JWT_SECRET is unset. Only accepted in the local environment.
const DevelopmentJWTSecret = "local-development-secret"

// EnvironmentLocal is the docker compose development setup.
const EnvironmentLocal = "local"

type Config struct {
	Environment string


	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort           string
	JWTSecret          string
	OperatorWorkers    int
	LogLevel           string
	CORSAllowedOrigins []string
}

// PostgresURL builds the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		Environment:        EnvironmentLocal,
		HTTPPort:           "9446",
		JWTSecret:          DevelopmentJWTSecret,
		OperatorWorkers:    4,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
	}

	overrideString(&env.Environment, "ENVIRONMENT")
	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.JWTSecret, "JWT_SECRET")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	if workers := os.Getenv("OPERATOR_WORKERS"); len(workers) != 0 {
		n, err := strconv.Atoi(workers)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", workers)
		}
		env.OperatorWorkers = n
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); len(origins) != 0 {
		env.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, origin)
			}
		}
	}

	if env.UsesDevelopmentSecret() && env.Environment != EnvironmentLocal {
		return nil, fmt.Errorf("JWT_SECRET must be set when ENVIRONMENT is %q", env.Environment)
	}

	return &env, nil
}

// UsesDevelopmentSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) UsesDevelopmentSecret() bool {
	return c.JWTSecret == DevelopmentJWTSecret
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
