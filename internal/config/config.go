package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	jwtSecretEnvKey    = "JWT_SECRET"
	geminiKeyEnvKey    = "GEMINI_API_KEY"
	googleKeyEnvKey    = "GOOGLE_API_KEY"
	geminiModelEnvKey  = "GEMINI_MODEL"
	dbConnectionEnvKey = "DB_CONNECTION_URL"
)

// App holds process configuration read from the environment. GeminiAPIKey and
// DBConnectionURL are optional: without the former the enhance-prompt endpoint
// reports the service unavailable, without the latter records live in memory
// for the lifetime of the process.
type App struct {
	Port            string
	JWTSecret       string
	GeminiAPIKey    string
	GeminiModel     string
	DBConnectionURL string
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	geminiKey := os.Getenv(geminiKeyEnvKey)
	if geminiKey == "" {
		geminiKey = os.Getenv(googleKeyEnvKey)
	}

	return App{
		Port:            port,
		JWTSecret:       jwtSecret,
		GeminiAPIKey:    geminiKey,
		GeminiModel:     os.Getenv(geminiModelEnvKey),
		DBConnectionURL: os.Getenv(dbConnectionEnvKey),
	}, nil
}
