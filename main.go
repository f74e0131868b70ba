package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/routes"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/session"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init durable store
	kv := initStore()

	// Context objects, constructed once and injected everywhere
	deps := routes.Deps{
		BuyerSession:  session.NewManager(kv, models.RoleBuyer),
		VendorSession: session.NewManager(kv, models.RoleVendor),
		AdminSession:  session.NewManager(kv, models.RoleAdmin),
		Wishlist:      collections.NewWishlist(kv),
		Shared:        collections.NewSharedItems(kv),
		Searches:      collections.NewRecentSearches(kv),
		Orders:        mockdata.NewOrderBook(),
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve product images
	r.Static("/images", "./public/images")

	// Setup routes
	routes.SetupRoutes(r, deps)

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

// initStore opens the durable key-value store: postgres when DATABASE_URL is
// set, otherwise a local sqlite file. Falls back to process memory when
// neither can be opened; persistence across restarts is lost in that case.
func initStore() store.Store {
	var (
		db  *gorm.DB
		err error
	)

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = "data/app.db"
		}
		if dir := filepath.Dir(path); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Printf("❌ DB connection failed, using in-memory store: %v", err)
		return store.NewMemory()
	}

	kv, err := store.NewDB(db)
	if err != nil {
		log.Printf("❌ Store migration failed, using in-memory store: %v", err)
		return store.NewMemory()
	}
	return kv
}
