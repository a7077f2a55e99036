package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mibon4ik/toyota-sub000/routes"
	"github.com/mibon4ik/toyota-sub000/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Init stores
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	catalog := store.NewCatalogStore(store.SeedParts())

	users, err := store.NewUserStore(filepath.Join(dataDir, "users.json"))
	if err != nil {
		log.Fatalf("❌ Failed to init user store: %v", err)
	}
	orders, err := store.NewOrderStore(filepath.Join(dataDir, "orders.json"))
	if err != nil {
		log.Fatalf("❌ Failed to init order store: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve part images
	r.Static("/images", "./public/images")

	// Setup routes
	routes.SetupRoutes(r, catalog, users, orders)

	// Start backup routine at 2 AM daily, keep 7 days of backups
	backupDir := filepath.Join(dataDir, "backup")
	go startDailyBackupAtFixedTime(dataDir, backupDir, 7*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// startDailyBackupAtFixedTime copies the JSON data files daily at a fixed
// hour and removes backups older than the retention window.
func startDailyBackupAtFixedTime(dataDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := backupDataFiles(dataDir, destDir); err != nil {
			log.Printf("❌ Failed to back up data files: %v", err)
		} else {
			log.Printf("✅ Data files backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// backupDataFiles copies the top-level *.json files from the data directory.
func backupDataFiles(srcDir, destDir string) error {
	matches, err := filepath.Glob(filepath.Join(srcDir, "*.json"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	for _, src := range matches {
		if err := copyFile(src, filepath.Join(destDir, filepath.Base(src))); err != nil {
			return err
		}
	}
	return nil
}

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

	_, err = io.Copy(out, in)
	return err
}

// cleanupOldBackups removes backup folders older than the retention window.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(backupDir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🧹 Removed old backup %s", path)
			}
		}
	}
}
