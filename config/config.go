package config

import (
	"os"
	"time"

	"github.com/menuboard/menuboard-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all runtime settings, resolved once at process start.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	TokenTTL  time.Duration
	UploadDir string
}

var App Config

var DB *gorm.DB

// Load reads .env (if present) and the environment into App.
// JWT_SECRET has no fallback: a guessable default would make every
// issued token forgeable.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	App = Config{
		Port:      getEnv("PORT", "5001"),
		DBPath:    getEnv("DB_PATH", "menuboard.db"),
		JWTSecret: []byte(secret),
		TokenTTL:  24 * time.Hour,
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database at App.DBPath and migrates all models.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(App.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatal("failed to connect to database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Promotion{},
		&models.Advertisement{},
	)
	if err != nil {
		logrus.Fatal("failed to migrate database: ", err)
	}

	logrus.Info("database connected and migrated")
}
