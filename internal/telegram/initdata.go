package telegram

import (
	"fmt"
	"strconv"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// Validator parses and verifies Telegram Mini App init data
//
//go:generate mockgen -source=initdata.go -destination=../mocks/telegram_validator.go -package=mocks -mock_names=Validator=MockValidator
type Validator interface {
	// Parse decodes init data without checking its signature
	Parse(raw string) (*InitData, error)

	// Validate decodes init data and verifies its signature and age
	Validate(raw string) (*InitData, error)
}

// User is the Telegram account that opened the Mini App
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// InitData is the decoded launch payload of a Mini App
type InitData struct {
	QueryID  string
	User     User
	AuthDate time.Time
	Hash     string
}

// UserID returns the Telegram user id in its decimal string form
func (d *InitData) UserID() string {
	return strconv.FormatInt(d.User.ID, 10)
}

type validator struct {
	botToken string
	ttl      time.Duration
	clock    adapter.Clock
}

// NewValidator creates a validator for a bot token. A zero ttl disables the age check.
func NewValidator(botToken string, ttl time.Duration, clock adapter.Clock) Validator {
	return &validator{botToken: botToken, ttl: ttl, clock: clock}
}

// Parse decodes init data without checking its signature
func (v *validator) Parse(raw string) (*InitData, error) {
	parsed, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed init data: %w", domain.ErrAuthentication, err)
	}
	if parsed.User.ID == 0 {
		return nil, fmt.Errorf("%w: init data has no user id", domain.ErrAuthentication)
	}

	data := &InitData{
		QueryID: parsed.QueryID,
		Hash:    parsed.Hash,
		User: User{
			ID:           parsed.User.ID,
			FirstName:    parsed.User.FirstName,
			LastName:     parsed.User.LastName,
			Username:     parsed.User.Username,
			LanguageCode: parsed.User.LanguageCode,
			IsPremium:    parsed.User.IsPremium,
		},
	}
	if parsed.AuthDateRaw != 0 {
		data.AuthDate = v.clock.Unix(int64(parsed.AuthDateRaw), 0)
	}

	return data, nil
}

// Validate decodes init data and verifies its signature and age
func (v *validator) Validate(raw string) (*InitData, error) {
	// age is checked below against the injected clock
	if err := initdata.Validate(raw, v.botToken, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	data, err := v.Parse(raw)
	if err != nil {
		return nil, err
	}

	if v.ttl > 0 && data.AuthDate.Add(v.ttl).Before(v.clock.Now()) {
		return nil, fmt.Errorf("%w: init data expired", domain.ErrAuthentication)
	}

	return data, nil
}
