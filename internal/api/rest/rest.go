package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. walletLimit throttles wallet creation.
func SetupRoutes(router *gin.Engine, handler Handler, walletLimit gin.HandlerFunc) {
	router.GET("/health", handler.HealthCheck)

	telegram := router.Group("/telegram")
	{
		telegram.POST("/validate", handler.ValidateTelegram)
		telegram.POST("/create-pkp", handler.CreatePKP)
		telegram.POST("/resume-pkp", handler.ResumePKP)
		telegram.POST("/get-pkps", handler.GetPKPs)
	}

	router.POST("/register-payer", walletLimit, handler.RegisterPayer)
	router.POST("/add-payee", handler.AddPayee)
	router.POST("/payer-authsig", handler.GetPayerAuthSig)

	router.GET("/nft/:name", handler.GetNFTMetadata)
}
