package handlers

import (
	"github.com/gin-gonic/gin"

	"stock-simulator/middleware"
)

// Routes registers the full HTTP surface on a gin engine.
func Routes(router *gin.Engine) {
	// Public routes
	router.POST("/register", Register)
	router.POST("/login", Login)
	router.POST("/logout", Logout)
	router.POST("/change_password", ChangePassword)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middleware.JWTAuth())
	{
		auth.GET("/", Index)
		auth.POST("/buy", Buy)
		auth.POST("/sell", Sell)
		auth.GET("/history", History)
		auth.GET("/quote/:symbol", Quote)
	}
}
