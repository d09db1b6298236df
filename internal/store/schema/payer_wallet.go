package schema

import "time"

// PayerWallet represents the payer_wallets table - funding wallets created by the relay.
// The private key is only ever returned to the caller and never stored.
type PayerWallet struct {
	// Address is the checksummed wallet address
	Address string `gorm:"column:address;primaryKey;type:varchar(42)"`
	// Network is the Lit network the wallet's capacity credit lives on
	Network string `gorm:"column:network;not null;type:varchar(32)"`
	// CapacityTokenID is the capacity credit minted for the wallet (decimal)
	CapacityTokenID string `gorm:"column:capacity_token_id;not null;type:text"`
	// FundingTxHash is the transfer that funded the wallet
	FundingTxHash string `gorm:"column:funding_tx_hash;not null;type:varchar(66)"`
	// MintTxHash is the transaction that minted the capacity credit
	MintTxHash string    `gorm:"column:mint_tx_hash;not null;type:varchar(66)"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PayerWallet model
func (PayerWallet) TableName() string {
	return "payer_wallets"
}
