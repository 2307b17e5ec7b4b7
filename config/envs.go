package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	APIKey           string // Operator key accepted by protected routes
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisAddr        string // Address of the Redis leaderboard store
	RedisPassword    string // Password for Redis
	LeaderboardTTL   int    // Seconds a leaderboard lives without new entries
	LeaderboardSize  int    // Entries kept per algorithm
	MaxMazeDimension int    // Largest accepted maze width or height
	Animate          bool   // Log every algorithm step instead of only end states
	StepDelayMS      int    // Pause between animated steps
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		APIKey:           getEnvWithDefault("API_KEY", ""),
		JWTSecret:        getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:        getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		DBHost:           getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:           getEnvWithDefault("DB_USER", ""),
		DBPassword:       getEnvWithDefault("DB_PASS", ""),
		DBName:           getEnvWithDefault("DB_NAME", "vinom_maze"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardTTL:   getEnvAsIntWithDefault("LEADERBOARD_TTL", 86400),
		LeaderboardSize:  getEnvAsIntWithDefault("LEADERBOARD_SIZE", 100),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 101),
		Animate:          getEnvWithDefault("ANIMATE", "false") == "true",
		StepDelayMS:      getEnvAsIntWithDefault("STEP_DELAY_MS", 0),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. A set but unparsable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}
