package config

import (
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config is loaded once at startup from the environment (.env is loaded
// automatically by godotenv).
type Config struct {
	Env          string
	HTTPPort     string
	DBType       string // postgres | sqlite
	DatabaseURL  string // postgres dsn
	DBPath       string // sqlite file path
	RedisAddr    string // empty disables the published-page cache
	KafkaBrokers string // empty disables publish events
	KafkaTopic   string
	Compression  string // nop | gzip | brotli | lz4
	CacheWarm    string // cron schedule for the cache warm task
}

func LoadConfig() *Config {
	return &Config{
		Env:          getenv("ENV", "dev"),
		HTTPPort:     getenv("HTTP_PORT", "8000"),
		DBType:       getenv("DB_TYPE", "sqlite"),
		DatabaseURL:  getenv("DATABASE_URL", "host=localhost user=datalake password=datalake dbname=datalake port=5432"),
		DBPath:       getenv("DB_PATH", "data/datalake.db"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getenv("KAFKA_TOPIC", "datalake.publish"),
		Compression:  getenv("COMPRESSION", "nop"),
		CacheWarm:    getenv("CACHE_WARM_SCHEDULE", "@every 10m"),
	}
}

// GetDb opens the configured database. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey on every driver.
func GetDb(cnf *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	switch cnf.DBType {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cnf.DatabaseURL), &gorm.Config{TranslateError: true})
	default:
		if err = os.MkdirAll(filepath.Dir(cnf.DBPath), os.ModePerm); err != nil {
			logrus.Fatalf("error creating database directory: %v", err)
		}
		db, err = gorm.Open(sqlite.Open(cnf.DBPath), &gorm.Config{TranslateError: true})
	}

	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	return db
}

// CloseDb releases the underlying connection pool on shutdown.
func CloseDb(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("error getting database handle: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("error closing database: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
