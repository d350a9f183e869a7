package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port   string
	AppEnv string
	AppURL string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBPath     string

	AppAuthKey string
	AppEncKey  string
	CSRFKey    string

	AdminUsername     string
	AdminPasswordHash string

	StorageDriver    string
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageRegion    string
	StorageUseSSL    bool
	StoragePublicURL string
	StorageLocalDir  string

	WhatsAppPhone string

	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string
	AdminEmail    string

	TrackerBuffer  int
	TrackerWorkers int

	TemplatesDir string
	StaticDir    string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	appURL := getEnv("APP_URL", "http://localhost:8080")

	return ENV{
		Port:   getEnv("APP_PORT", ":8080"),
		AppEnv: getEnv("APP_ENV", "development"),
		AppURL: strings.TrimRight(appURL, "/"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "catalog.db"),

		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		StorageDriver:    strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageUseSSL:    getEnvBool("STORAGE_USE_SSL", true),
		StoragePublicURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_URL", appURL+"/uploads"), "/"),
		StorageLocalDir:  getEnv("STORAGE_LOCAL_DIR", "uploads"),

		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "201004119595"),

		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     getEnv("EMAIL_PORT", "587"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),

		TrackerBuffer:  getEnvInt("TRACKER_BUFFER", 256),
		TrackerWorkers: getEnvInt("TRACKER_WORKERS", 2),

		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
	}

}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("LoadEnv: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("LoadEnv: invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
