package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLogLevel       = "CUSTOMERS_LOG_LEVEL"
	EnvLogDevelopment = "CUSTOMERS_LOG_DEV"
	EnvPDFFont        = "CUSTOMERS_PDF_FONT"
)

// Env holds process-level configuration read from the environment
type Env struct {
	LogLevel       string
	LogDevelopment bool
	// PDFFontPath points to a UTF-8 TrueType font used for exports. Empty
	// means the built-in font, which cannot render non-Latin names.
	PDFFontPath string
}

// LoadEnv reads the optional .env files and then the environment. It reports
// whether a .env file was found; a missing file is not an error.
func LoadEnv(files ...string) (Env, bool) {
	loaded := godotenv.Load(files...) == nil
	return Env{
		LogLevel:       getEnv(EnvLogLevel, "info"),
		LogDevelopment: strings.ToLower(getEnv(EnvLogDevelopment, "false")) == "true",
		PDFFontPath:    getEnv(EnvPDFFont, ""),
	}, loaded
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
