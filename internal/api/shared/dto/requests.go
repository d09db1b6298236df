package dto

import "github.com/yhl125/iampocket-relay-server/internal/domain"

// ValidateTelegramRequest checks that a Telegram user may use an identity token
type ValidateTelegramRequest struct {
	InitDataRaw string `json:"initDataRaw" binding:"required"`
	PKPTokenID  string `json:"pkpTokenId" binding:"required"`
}

// TelegramRequest carries only the Mini App init data
type TelegramRequest struct {
	InitDataRaw string `json:"initDataRaw" binding:"required"`
}

// ResumeProvisioningRequest continues a provisioning run that stopped on a step
type ResumeProvisioningRequest struct {
	InitDataRaw    string `json:"initDataRaw" binding:"required"`
	ProvisioningID string `json:"provisioningId" binding:"required"`
}

// RegisterPayerRequest creates a funded payer wallet on a network
type RegisterPayerRequest struct {
	Network     domain.Network `json:"network" binding:"required"`
	InitDataRaw string         `json:"initDataRaw"`
}

// AddPayeeRequest lets a payee spend the payer's capacity credit
type AddPayeeRequest struct {
	Network         domain.Network `json:"network" binding:"required"`
	PayerPrivateKey string         `json:"payerPrivateKey" binding:"required"`
	Payee           string         `json:"payee" binding:"required"`
	InitDataRaw     string         `json:"initDataRaw"`
}

// PayerAuthSigRequest asks for a capacity delegation signed by the payer
type PayerAuthSigRequest struct {
	PayerPrivateKey string `json:"payerPrivateKey" binding:"required"`
	InitDataRaw     string `json:"initDataRaw"`
	Payee           string `json:"payee" binding:"required"`
}
