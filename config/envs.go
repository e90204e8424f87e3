package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeDir         string // Directory scanned for maze files when no database is configured
	MoveBudgets     []int  // Move-budget thresholds evaluated in order
	SolverWorkers   int    // Number of concurrent exit searches per maze
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr       string // Address of the redis server, empty disables caching
	RedisPassword   string // Password for the redis server
	CacheTTLSeconds int    // Lifetime of cached solutions
	MongoURI        string // Connection string for MongoDB, empty keeps mazes on disk
	DBName          string // Name of the database
	MazeCollection  string // Collection holding stored mazes
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
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
		MazeDir:         getEnvWithDefault("MAZE_DIR", "mazes"),
		MoveBudgets:     getEnvAsIntList("MOVE_BUDGETS", []int{20, 150, 200}),
		SolverWorkers:   getEnvAsIntWithDefault("SOLVER_WORKERS", 1),
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		MongoURI:        getEnvWithDefault("MONGO_URI", ""),
		DBName:          getEnvWithDefault("DB_NAME", "vinom"),
		MazeCollection:  getEnvWithDefault("MAZE_COLLECTION", "mazes"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-maze-solver"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// It logs a fatal error if the value is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsIntList retrieves a comma separated list of integers.
func getEnvAsIntList(key string, defaultValue []int) []int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	values, err := ParseIntList(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a comma separated list of integers: %v", key, err)
	}
	return values
}

// ParseIntList parses a comma separated list of integers, ignoring blank entries.
func ParseIntList(s string) ([]int, error) {
	var values []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
