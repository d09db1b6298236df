package schema

import (
	"time"

	"gorm.io/datatypes"
)

// IdentityProvisioning represents the identity_provisionings table - one row per provisioning run
type IdentityProvisioning struct {
	// ID is the provisioning identifier handed back to the client (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// TelegramUserID is the Telegram user the identity is minted for
	TelegramUserID string `gorm:"column:telegram_user_id;not null;type:text;index"`
	// Network is the Lit network the identity lives on
	Network string `gorm:"column:network;not null;type:varchar(32)"`
	// State is the last step that completed
	State string `gorm:"column:state;not null;type:varchar(32)"`
	// FailedStep is the step that failed, if any
	FailedStep *string `gorm:"column:failed_step;type:varchar(32)"`
	// Error is the message of the last failure
	Error *string `gorm:"column:error;type:text"`
	// TokenID is the minted identity token (hex)
	TokenID *string `gorm:"column:token_id;type:text"`
	// PublicKey is the public key of the minted identity (hex)
	PublicKey *string `gorm:"column:public_key;type:text"`
	// TxHashes maps each step to the transaction that completed it
	TxHashes datatypes.JSON `gorm:"column:tx_hashes;not null;type:jsonb;default:'{}'"`
	// WorkflowID is the workflow that drives this run
	WorkflowID *string `gorm:"column:workflow_id;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the IdentityProvisioning model
func (IdentityProvisioning) TableName() string {
	return "identity_provisionings"
}
