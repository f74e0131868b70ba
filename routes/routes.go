package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/session"
)

// Deps carries every context object the handlers need. Everything is
// constructed once in main and injected here; no hidden singletons.
type Deps struct {
	BuyerSession  *session.Manager
	VendorSession *session.Manager
	AdminSession  *session.Manager
	Wishlist      *collections.Wishlist
	Shared        *collections.SharedItems
	Searches      *collections.RecentSearches
	Orders        *mockdata.OrderBook
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public auth routes per role (no middleware)
	SetupAuthRoutes(r, d)

	// 2️⃣ Analysis, quotes and vendor catalog
	SetupAPIRoutes(r, d)

	// 3️⃣ Order routes
	SetupOrderRoutes(r, d)

	// 4️⃣ User collection routes (JWT-protected)
	SetupUserRoutes(r, d)

	// 5️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, d)
}
