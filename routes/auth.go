package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/auth"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/middleware"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/session"
)

// SetupAuthRoutes registers login/logout/session endpoints for each role.
// Every role keeps an independent session.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	registerRole(r.Group("/auth"), d.BuyerSession)
	registerRole(r.Group("/vendor"), d.VendorSession)
	registerRole(r.Group("/admin"), d.AdminSession)
}

func registerRole(g *gin.RouterGroup, m *session.Manager) {
	g.POST("/login", middleware.Latency(800*time.Millisecond), auth.LoginHandler(m))
	g.POST("/logout", auth.LogoutHandler(m))
	g.GET("/session", auth.SessionHandler(m))
}
