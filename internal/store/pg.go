package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateProvisioning records a new provisioning run
func (s *pgStore) CreateProvisioning(ctx context.Context, input CreateProvisioningInput) error {
	row, err := provisioningRow(input.Progress)
	if err != nil {
		return err
	}
	if input.WorkflowID != "" {
		row.WorkflowID = &input.WorkflowID
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create provisioning: %w", err)
	}
	return nil
}

// GetProvisioning retrieves a provisioning run, or nil when it does not exist
func (s *pgStore) GetProvisioning(ctx context.Context, provisioningID string) (*domain.ProvisioningProgress, error) {
	var row schema.IdentityProvisioning
	err := s.db.WithContext(ctx).Where("id = ?", provisioningID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get provisioning: %w", err)
	}

	progress, err := provisioningProgress(row)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// SaveProvisioningProgress overwrites the progress of an existing run
func (s *pgStore) SaveProvisioningProgress(ctx context.Context, progress domain.ProvisioningProgress) error {
	row, err := provisioningRow(progress)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&schema.IdentityProvisioning{}).
		Where("id = ?", progress.ProvisioningID).
		Updates(map[string]interface{}{
			"state":       row.State,
			"failed_step": row.FailedStep,
			"error":       row.Error,
			"token_id":    row.TokenID,
			"public_key":  row.PublicKey,
			"tx_hashes":   row.TxHashes,
			"updated_at":  gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save provisioning progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProvisioningNotFound, progress.ProvisioningID)
	}
	return nil
}

// ListProvisioningsByUser returns the most recent runs of a Telegram user, newest first
func (s *pgStore) ListProvisioningsByUser(ctx context.Context, telegramUserID string, limit int) ([]domain.ProvisioningProgress, error) {
	var rows []schema.IdentityProvisioning
	query := s.db.WithContext(ctx).
		Where("telegram_user_id = ?", telegramUserID).
		Order("created_at DESC, id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list provisionings: %w", err)
	}

	progresses := make([]domain.ProvisioningProgress, 0, len(rows))
	for _, row := range rows {
		progress, err := provisioningProgress(row)
		if err != nil {
			return nil, err
		}
		progresses = append(progresses, progress)
	}
	return progresses, nil
}

// CreatePayerWallet records a payer wallet
func (s *pgStore) CreatePayerWallet(ctx context.Context, input CreatePayerWalletInput) error {
	wallet := schema.PayerWallet{
		Address:         input.Address,
		Network:         string(input.Network),
		CapacityTokenID: input.CapacityTokenID,
		FundingTxHash:   input.FundingTxHash,
		MintTxHash:      input.MintTxHash,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&wallet).Error
	if err != nil {
		return fmt.Errorf("failed to create payer wallet: %w", err)
	}
	return nil
}

// GetPayerWallet retrieves a payer wallet, or nil when it does not exist
func (s *pgStore) GetPayerWallet(ctx context.Context, address string) (*schema.PayerWallet, error) {
	var wallet schema.PayerWallet
	err := s.db.WithContext(ctx).Where("LOWER(address) = ?", strings.ToLower(address)).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payer wallet: %w", err)
	}
	return &wallet, nil
}

// CreatePayeeDelegations records the payees of one delegation transaction
func (s *pgStore) CreatePayeeDelegations(ctx context.Context, input CreatePayeeDelegationsInput) error {
	if len(input.PayeeAddresses) == 0 {
		return nil
	}

	rows := make([]schema.PayeeDelegation, 0, len(input.PayeeAddresses))
	for _, payee := range input.PayeeAddresses {
		rows = append(rows, schema.PayeeDelegation{
			PayerAddress:    input.PayerAddress,
			PayeeAddress:    payee,
			Network:         string(input.Network),
			CapacityTokenID: input.CapacityTokenID,
			TxHash:          input.TxHash,
		})
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create payee delegations: %w", err)
	}
	return nil
}

// ListPayeeDelegations returns the delegations of a payer on a network, oldest first
func (s *pgStore) ListPayeeDelegations(ctx context.Context, payerAddress string, network domain.Network) ([]schema.PayeeDelegation, error) {
	var rows []schema.PayeeDelegation
	err := s.db.WithContext(ctx).
		Where("LOWER(payer_address) = ? AND network = ?", strings.ToLower(payerAddress), string(network)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payee delegations: %w", err)
	}
	return rows, nil
}

// WithLock runs fn inside a transaction holding a transaction-scoped advisory lock on key.
// The lock is released when the transaction ends, including on connection loss.
func (s *pgStore) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
			return fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		return fn(ctx)
	})
}

func provisioningRow(p domain.ProvisioningProgress) (schema.IdentityProvisioning, error) {
	txHashes := p.TxHashes
	if txHashes == nil {
		txHashes = map[string]string{}
	}
	raw, err := json.Marshal(txHashes)
	if err != nil {
		return schema.IdentityProvisioning{}, fmt.Errorf("failed to marshal tx hashes: %w", err)
	}

	return schema.IdentityProvisioning{
		ID:             p.ProvisioningID,
		TelegramUserID: p.TelegramUserID,
		Network:        string(p.Network),
		State:          string(p.State),
		FailedStep:     optional(string(p.FailedStep)),
		Error:          optional(p.Error),
		TokenID:        optional(p.TokenID),
		PublicKey:      optional(p.PublicKey),
		TxHashes:       datatypes.JSON(raw),
	}, nil
}

func provisioningProgress(row schema.IdentityProvisioning) (domain.ProvisioningProgress, error) {
	progress := domain.ProvisioningProgress{
		ProvisioningID: row.ID,
		TelegramUserID: row.TelegramUserID,
		Network:        domain.Network(row.Network),
		State:          domain.ProvisioningState(row.State),
		FailedStep:     domain.ProvisioningState(deref(row.FailedStep)),
		Error:          deref(row.Error),
		TokenID:        deref(row.TokenID),
		PublicKey:      deref(row.PublicKey),
	}

	if len(row.TxHashes) > 0 {
		if err := json.Unmarshal(row.TxHashes, &progress.TxHashes); err != nil {
			return domain.ProvisioningProgress{}, fmt.Errorf("failed to unmarshal tx hashes: %w", err)
		}
		if len(progress.TxHashes) == 0 {
			progress.TxHashes = nil
		}
	}

	return progress, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
