// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration shared by the storefront and
// console services.
type Config struct {
	Port string

	// Commerce REST API (the system of record for catalog, carts, orders).
	CommerceBaseURL string
	CommerceAPIKey  string

	// GCP project for Firestore / Firebase Auth / Secret Manager.
	GCPProjectID             string
	GCPCreds                 string
	FirestoreCredentialsFile string

	// PostgreSQL (visitor sessions).
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// GCS bucket for the persistent image cache. Empty disables the
	// persistent level; the in-memory level still works.
	ImageCacheBucket string

	// Allowed CORS origin for the browser SPA.
	CORSOrigin string
}

// Load reads the environment and returns the Config.
func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8080"),

		CommerceBaseURL: getenvDefault("COMMERCE_BASE_URL", "http://localhost:9090/api/v1"),
		CommerceAPIKey:  os.Getenv("COMMERCE_API_KEY"),

		GCPProjectID:             getenvDefault("GCP_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT")),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		DBHost:     getenvDefault("DB_HOST", "localhost"),
		DBPort:     getenvDefault("DB_PORT", "5432"),
		DBUser:     getenvDefault("DB_USER", "voltmart"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenvDefault("DB_NAME", "voltmart"),

		ImageCacheBucket: os.Getenv("IMAGE_CACHE_BUCKET"),

		CORSOrigin: getenvDefault("CORS_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
