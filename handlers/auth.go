package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"stock-simulator/ledger"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Package-level collaborators, wired once at startup.
var (
	book   *ledger.Ledger
	tokens TokenStore
)

// Setup wires the handlers to the ledger and the refresh-token store.
func Setup(l *ledger.Ledger, ts TokenStore) {
	book = l
	tokens = ts
}

type RegisterInput struct {
	Username     string `json:"username" form:"username" binding:"required"`
	Password     string `json:"password" form:"password" binding:"required"`
	Confirmation string `json:"confirmation" form:"confirmation" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := book.Register(input.Username, input.Password, input.Confirmation)
	if err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User created successfully",
		"id":       user.ID,
		"username": user.Username,
		"cash":     user.Cash,
	})
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := book.Authenticate(input.Username, input.Password)
	if err != nil {
		apology(c, err)
		return
	}

	jwtSecret := os.Getenv("JWT_SECRET")

	accessToken, err := signToken(userID, accessTokenTTL, jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	refreshToken, err := signToken(userID, refreshTokenTTL, jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating refresh token"})
		return
	}

	if err := tokens.Save(c.Request.Context(), refreshToken, userID, refreshTokenTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func signToken(userID uint, ttl time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" binding:"required"`
}

func Logout(c *gin.Context) {
	var input LogoutInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tokens.Revoke(c.Request.Context(), input.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error revoking refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

type ChangePasswordInput struct {
	Username        string `json:"username" form:"username" binding:"required"`
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
	Confirmation    string `json:"new_password_confirmation" form:"new_password_confirmation" binding:"required"`
}

// ChangePassword verifies the current password carried in the request body
// rather than a session, so the route stays unauthenticated.
func ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := book.ChangePassword(input.Username, input.CurrentPassword, input.NewPassword, input.Confirmation); err != nil {
		apology(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
