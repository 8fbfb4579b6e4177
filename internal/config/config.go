package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret    string
	ServerPort   string
	DBPath       string
	CORSOrigin   string
	CookieSecure bool
}

const (
	defaultJWTSecret  = "crimelogix"     // Default JWT secret, used if env var is not set.
	envJWTSecretKey   = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultServerPort = "8080"           // Default server port.
	envServerPortKey  = "SERVER_PORT"    // Environment variable name for the server port.
	defaultDBPath     = "data/crimelogix.db"
	envDBPathKey      = "SQLITE_DB_PATH"
	defaultCORSOrigin = "http://localhost:3000"
	envCORSOriginKey  = "CORS_ORIGIN"
	envCookieSecure   = "COOKIE_SECURE"
)

// LoadConfig loads configuration from a .env file (if present) and the
// environment, falling back to defaults. It should be called once at
// application startup.
func LoadConfig() {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, relying on environment variables.")
		}

		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("Warning: %s is not set. Using the default JWT secret; set it in production.", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
		}

		dbPath := os.Getenv(envDBPathKey)
		if dbPath == "" {
			dbPath = defaultDBPath
			log.Printf("%s not set, using default database path: %s", envDBPathKey, dbPath)
		}

		corsOrigin := os.Getenv(envCORSOriginKey)
		if corsOrigin == "" {
			corsOrigin = defaultCORSOrigin
		}

		AppConfig = Configuration{
			JWTSecret:    jwtSecret,
			ServerPort:   serverPort,
			DBPath:       dbPath,
			CORSOrigin:   corsOrigin,
			CookieSecure: os.Getenv(envCookieSecure) == "true",
		}

		log.Println("Application configuration loaded.")
	})
}
