package schema

import "time"

// PayeeDelegation represents the payee_delegations table - payees a payer pays for
type PayeeDelegation struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	PayerAddress string `gorm:"column:payer_address;not null;type:varchar(42);index:idx_payee_delegations_payer"`
	PayeeAddress string `gorm:"column:payee_address;not null;type:varchar(42)"`
	Network      string `gorm:"column:network;not null;type:varchar(32);index:idx_payee_delegations_payer"`
	// CapacityTokenID is the credit that backs the delegation (decimal)
	CapacityTokenID string    `gorm:"column:capacity_token_id;not null;type:text"`
	TxHash          string    `gorm:"column:tx_hash;not null;type:varchar(66)"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PayeeDelegation model
func (PayeeDelegation) TableName() string {
	return "payee_delegations"
}
