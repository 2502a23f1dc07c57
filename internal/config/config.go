package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is loaded once in main and
// passed to constructors; nothing reads the environment after startup.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenTTL       time.Duration
	AdminCode      string
	GroqAPIKey     string
	GroqModel      string
	ClassifierURL  string
	FrontendOrigin string
	UploadDir      string
}

// Load reads configuration from environment variables, optionally from a
// .env file if one is present.
func Load() (*Config, error) {
	// Ignore the error if no .env file exists
	_ = godotenv.Load()

	ttlStr := getEnv("TOKEN_TTL", "12h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "explore_karnataka"),
		JWTSecret:      getEnv("JWT_SECRET_KEY", "supersecretkey123"),
		TokenTTL:       ttl,
		AdminCode:      getEnv("ADMIN_CODE", "EXPKARNATAKA2025"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		GroqModel:      getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		ClassifierURL:  getEnv("CLASSIFIER_URL", "http://localhost:8501"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
