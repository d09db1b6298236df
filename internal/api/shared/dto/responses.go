package dto

import (
	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// RegisterPayerResponse hands a new payer wallet to the caller.
// It is the only place the payer private key is ever written.
type RegisterPayerResponse struct {
	PayerWalletAddress string `json:"payerWalletAddress"`
	PayerPrivateKey    string `json:"payerPrivateKey"`
}

// MapFundingWalletToDTO maps a funding wallet to its response
func MapFundingWalletToDTO(wallet *domain.FundingWallet) *RegisterPayerResponse {
	return &RegisterPayerResponse{
		PayerWalletAddress: wallet.Address.Hex(),
		PayerPrivateKey:    wallet.PrivateKey,
	}
}

// HealthResponse reports that the service is up
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
