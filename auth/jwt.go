package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

// issueJWT generates a JWT token for an authenticated principal
func issueJWT(p models.Principal) string {
	claims := jwt.MapClaims{
		"user_id": p.ID,
		"email":   p.Email,
		"role":    string(p.Role),
		"name":    p.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
