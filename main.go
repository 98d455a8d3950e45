package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/cache"
	"github.com/Vairous86/bbbeeedddooo/config"
	analyticsControllers "github.com/Vairous86/bbbeeedddooo/controllers/analytics"
	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/middleware"
	"github.com/Vairous86/bbbeeedddooo/models"
	"github.com/Vairous86/bbbeeedddooo/routes"
	"github.com/Vairous86/bbbeeedddooo/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	config.LoadConfig()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.VisitLog{},
		&models.AnalyticsEvent{},
		&models.Order{},
		&models.PaymentSetting{},
		&models.Service{},
		&models.ServicePackage{},
		&models.Platform{},
		&models.MostRequested{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Optional Redis cache (nil when unconfigured)
	cch := cache.New(cache.Config{
		Addr:     config.AppConfig.Redis.Addr,
		Password: config.AppConfig.Redis.Password,
		DB:       config.AppConfig.Redis.DB,
	})
	if cch != nil {
		if err := cch.Ping(context.Background()); err != nil {
			log.Printf("⚠️ Redis unavailable, continuing without cache: %v", err)
			cch = nil
		}
	}

	m := metrics.Registry("smmstore")
	geo := analyticsControllers.NewGeoClient(
		config.AppConfig.GeoIP.URL,
		time.Duration(config.AppConfig.GeoIP.TimeoutSeconds)*time.Second,
		cch,
	)
	blobs := storage.NewLocalStore(config.AppConfig.Uploads.Dir, config.AppConfig.Uploads.BaseURL)

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (screenshots can be full-page captures)
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images (QR codes, screenshots, service images)
	r.Static("/uploads", config.AppConfig.Uploads.Dir)

	// Prometheus metrics, API-key protected
	r.GET("/metrics", middleware.ValidateAPIKey, gin.WrapH(promhttp.Handler()))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:      db,
		Cache:   cch,
		Metrics: m,
		Geo:     geo,
		Blobs:   blobs,
		Policy:  models.PermissiveTransitions{},
	})

	// Start backup routine at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(config.AppConfig.Uploads.Dir, config.AppConfig.Uploads.BackupDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := config.AppConfig.Server.Port
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	cfg := config.AppConfig.Database

	var dsn string
	if cfg.URL != "" {
		dsn = cfg.URL
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// startDailyBackupAtFixedTime backs up uploaded files daily at a fixed hour
// and removes old backups. Screenshots are payment records, so losing the
// uploads dir must not lose them.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next uploads backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up uploads: %v", err)
		} else {
			log.Printf("✅ Uploads backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
