package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yhl125/iampocket-relay-server/internal/api/shared/constants"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/dto"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ValidateTelegram checks a Telegram user against an identity token
	// POST /telegram/validate
	ValidateTelegram(c *gin.Context)

	// CreatePKP provisions an identity token for a Telegram user
	// POST /telegram/create-pkp
	CreatePKP(c *gin.Context)

	// ResumePKP continues a provisioning run that stopped on a step
	// POST /telegram/resume-pkp
	ResumePKP(c *gin.Context)

	// GetPKPs lists the identity tokens of a Telegram user
	// POST /telegram/get-pkps
	GetPKPs(c *gin.Context)

	// RegisterPayer creates a funded payer wallet holding a capacity credit
	// POST /register-payer
	RegisterPayer(c *gin.Context)

	// AddPayee delegates a payer's capacity credit to a payee
	// POST /add-payee
	AddPayee(c *gin.Context)

	// GetPayerAuthSig signs a capacity delegation from a payer to a payee
	// POST /payer-authsig
	GetPayerAuthSig(c *gin.Context)

	// GetNFTMetadata serves a static collectible document
	// GET /nft/:name
	GetNFTMetadata(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) ValidateTelegram(c *gin.Context) {
	var req dto.ValidateTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ok, err := h.executor.ValidateTelegram(c.Request.Context(), req.InitDataRaw, req.PKPTokenID)
	if err != nil {
		respondError(c, err, "Failed to validate Telegram user")
		return
	}

	c.JSON(http.StatusOK, ok)
}

func (h *handler) CreatePKP(c *gin.Context) {
	var req dto.TelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	token, err := h.executor.CreateIdentity(c.Request.Context(), req.InitDataRaw)
	if err != nil {
		respondError(c, err, "Failed to create PKP")
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) ResumePKP(c *gin.Context) {
	var req dto.ResumeProvisioningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	token, err := h.executor.ResumeIdentity(c.Request.Context(), req.InitDataRaw, req.ProvisioningID)
	if err != nil {
		respondError(c, err, "Failed to resume PKP provisioning")
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) GetPKPs(c *gin.Context) {
	var req dto.TelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	tokens, err := h.executor.GetIdentities(c.Request.Context(), req.InitDataRaw)
	if err != nil {
		respondError(c, err, "Failed to get PKPs")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *handler) RegisterPayer(c *gin.Context) {
	var req dto.RegisterPayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	resp, err := h.executor.RegisterPayer(c.Request.Context(), req.Network, req.InitDataRaw)
	if err != nil {
		respondError(c, err, "Failed to register payer")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) AddPayee(c *gin.Context) {
	var req dto.AddPayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ok, err := h.executor.AddPayee(c.Request.Context(), req.Network, req.PayerPrivateKey, req.Payee, req.InitDataRaw)
	if err != nil {
		respondError(c, err, "Failed to add payee")
		return
	}

	c.JSON(http.StatusOK, ok)
}

func (h *handler) GetPayerAuthSig(c *gin.Context) {
	var req dto.PayerAuthSigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	authSig, err := h.executor.GetPayerAuthSig(c.Request.Context(), req.PayerPrivateKey, req.InitDataRaw, req.Payee)
	if err != nil {
		respondError(c, err, "Failed to create payer auth sig")
		return
	}

	c.JSON(http.StatusOK, authSig)
}

func (h *handler) GetNFTMetadata(c *gin.Context) {
	name := c.Param("name")
	metadata, ok := constants.NFT_METADATA[name]
	if !ok {
		respondNotFound(c, "NFT not found", name)
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: constants.SERVICE_NAME,
	})
}
