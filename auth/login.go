package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/session"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler validates the pair against the role's known credential and
// answers with the session principal plus a JWT. Invalid credentials are a
// 401; only a store failure produces a 500.
func LoginHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "이메일과 비밀번호를 입력해 주세요."})
			return
		}

		principal, err := m.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "이메일 또는 비밀번호가 올바르지 않습니다."})
				return
			}
			log.Println("❌ Login failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "일시적인 오류가 발생했습니다. 다시 시도해 주세요."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    principal,
			"token":   issueJWT(principal),
		})
	}
}

// LogoutHandler clears the session. Safe to call while anonymous.
func LogoutHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.Logout()
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// SessionHandler is the restore read: it reports the principal persisted from
// an earlier login, if any.
func SessionHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := m.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "로그인이 필요합니다."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": principal})
	}
}
