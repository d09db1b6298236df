package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Network identifies a Lit deployment
type Network string

const (
	NetworkManzano   Network = "manzano"
	NetworkHabanero  Network = "habanero"
	NetworkDatilDev  Network = "datil-dev"
	NetworkDatilTest Network = "datil-test"
	NetworkDatil     Network = "datil"
	// NetworkCayenne is retired; it is only named so policy checks can reject it explicitly
	NetworkCayenne Network = "cayenne"
)

// SupportedNetworks lists every network the relay can resolve contracts for
var SupportedNetworks = []Network{
	NetworkManzano,
	NetworkHabanero,
	NetworkDatilDev,
	NetworkDatilTest,
	NetworkDatil,
}

// IsSupportedNetwork checks if a network is one of SupportedNetworks
func IsSupportedNetwork(n Network) bool {
	for _, s := range SupportedNetworks {
		if s == n {
			return true
		}
	}
	return false
}

// CheckCapacityCreditNetwork rejects networks where capacity credits and payment delegation don't exist
func CheckCapacityCreditNetwork(n Network) error {
	if n == NetworkDatilDev || n == NetworkCayenne {
		return fmt.Errorf("%w: payment delegation is not available on %s", ErrUnsupportedNetwork, n)
	}
	if !IsSupportedNetwork(n) {
		return fmt.Errorf("%w: %s", ErrUnsupportedNetwork, n)
	}
	return nil
}

// ParseTokenID parses a token id given either as 0x-prefixed hex or as a decimal string
func ParseTokenID(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidTokenID)
	}

	var (
		id *big.Int
		ok bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		id, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		id, ok = new(big.Int).SetString(s, 10)
	}
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTokenID, s)
	}
	return id, nil
}

// IdentityToken is a minted PKP: an NFT whose public key belongs to a distributed signing key
type IdentityToken struct {
	TokenID   *big.Int
	PublicKey []byte
}

// EthAddress derives the account address controlled by the token's public key
func (t IdentityToken) EthAddress() (common.Address, error) {
	pub, err := crypto.UnmarshalPubkey(t.PublicKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to unmarshal public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

type identityTokenJSON struct {
	TokenID    string `json:"tokenId"`
	PublicKey  string `json:"publicKey"`
	EthAddress string `json:"ethAddress"`
}

// MarshalJSON renders the token with its derived address
func (t IdentityToken) MarshalJSON() ([]byte, error) {
	addr, err := t.EthAddress()
	if err != nil {
		return nil, err
	}
	return json.Marshal(identityTokenJSON{
		TokenID:    hexutil.EncodeBig(t.TokenID),
		PublicKey:  hexutil.Encode(t.PublicKey),
		EthAddress: addr.Hex(),
	})
}

// UnmarshalJSON parses the form produced by MarshalJSON; the address is re-derived, not trusted
func (t *IdentityToken) UnmarshalJSON(data []byte) error {
	var raw identityTokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := ParseTokenID(raw.TokenID)
	if err != nil {
		return err
	}
	pub, err := hexutil.Decode(raw.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	t.TokenID = id
	t.PublicKey = pub
	return nil
}

// PermittedAuthMethod is an authentication method allowed to use an identity token
type PermittedAuthMethod struct {
	Type       *big.Int
	ID         []byte
	UserPubkey []byte
	Scopes     []*big.Int
}

// TelegramAuthMethod returns the auth method registered for a Telegram user id
func TelegramAuthMethod(userID string) PermittedAuthMethod {
	return PermittedAuthMethod{
		Type:       big.NewInt(AuthMethodTypeTelegram),
		ID:         []byte(userID),
		UserPubkey: []byte{},
		Scopes:     []*big.Int{big.NewInt(AuthMethodScopeSignAnything)},
	}
}

// PermittedProgram is a content-addressed program allowed to sign with an identity token
type PermittedProgram struct {
	IPFSCID string
	Scopes  []*big.Int
}

// CapacityCreditMetadata is the decoded tokenURI document of a capacity credit
type CapacityCreditMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageData   string `json:"image_data"`
}

// CapacityCredit is a rate-limit NFT bounding how many requests its owner (or delegatees) may make
type CapacityCredit struct {
	TokenID               *big.Int                `json:"-"`
	Owner                 common.Address          `json:"owner"`
	Metadata              *CapacityCreditMetadata `json:"metadata,omitempty"`
	RequestsPerKilosecond *big.Int                `json:"-"`
	ExpiresAt             time.Time               `json:"expiresAt"`
	IsExpired             bool                    `json:"isExpired"`
}

// Usable reports whether the credit can still be used to pay for requests
func (c *CapacityCredit) Usable() bool {
	return c != nil && !c.IsExpired
}

// MarshalJSON renders numeric fields as decimal strings
func (c CapacityCredit) MarshalJSON() ([]byte, error) {
	type alias CapacityCredit
	return json.Marshal(struct {
		alias
		TokenID               string `json:"tokenId"`
		RequestsPerKilosecond string `json:"requestsPerKilosecond"`
	}{
		alias:                 alias(c),
		TokenID:               bigString(c.TokenID),
		RequestsPerKilosecond: bigString(c.RequestsPerKilosecond),
	})
}

// PaymentDelegation records a payer agreeing to pay for a set of payees
type PaymentDelegation struct {
	Payer           common.Address
	Payees          []common.Address
	Network         Network
	CapacityTokenID *big.Int
	TxHash          common.Hash
}

// FundingWallet is a freshly generated payer wallet handed back to the caller.
// The private key leaves the process only in the response body.
type FundingWallet struct {
	Address         common.Address
	PrivateKey      string
	Network         Network
	CapacityTokenID *big.Int
}

// String never includes the private key
func (w FundingWallet) String() string {
	return fmt.Sprintf("FundingWallet{%s on %s}", w.Address.Hex(), w.Network)
}

// ProvisioningState is a step of the identity provisioning state machine
type ProvisioningState string

const (
	ProvisioningStatePending          ProvisioningState = "pending"
	ProvisioningStateConnected        ProvisioningState = "connected"
	ProvisioningStateMinted           ProvisioningState = "minted"
	ProvisioningStateAuthPermitted    ProvisioningState = "auth_permitted"
	ProvisioningStateProgramPermitted ProvisioningState = "program_permitted"
	ProvisioningStateTransferred      ProvisioningState = "transferred"
)

var provisioningOrder = []ProvisioningState{
	ProvisioningStatePending,
	ProvisioningStateConnected,
	ProvisioningStateMinted,
	ProvisioningStateAuthPermitted,
	ProvisioningStateProgramPermitted,
	ProvisioningStateTransferred,
}

func (s ProvisioningState) rank() int {
	for i, o := range provisioningOrder {
		if o == s {
			return i
		}
	}
	return -1
}

// Valid checks if s is a known state
func (s ProvisioningState) Valid() bool {
	return s.rank() >= 0
}

// Reached reports whether s is at or past target
func (s ProvisioningState) Reached(target ProvisioningState) bool {
	return s.rank() >= target.rank() && target.rank() >= 0
}

// Next returns the state that follows s, or s itself when s is terminal or unknown
func (s ProvisioningState) Next() ProvisioningState {
	r := s.rank()
	if r < 0 || r == len(provisioningOrder)-1 {
		return s
	}
	return provisioningOrder[r+1]
}

// ProvisioningProgress is the persisted position of one identity provisioning run
type ProvisioningProgress struct {
	ProvisioningID string            `json:"provisioningId"`
	TelegramUserID string            `json:"telegramUserId"`
	Network        Network           `json:"network"`
	State          ProvisioningState `json:"state"`
	FailedStep     ProvisioningState `json:"failedStep,omitempty"`
	Error          string            `json:"error,omitempty"`
	TokenID        string            `json:"tokenId,omitempty"`
	PublicKey      string            `json:"publicKey,omitempty"`
	TxHashes       map[string]string `json:"txHashes,omitempty"`
}

// Failed reports whether the run stopped on a step
func (p ProvisioningProgress) Failed() bool {
	return p.FailedStep != ""
}

// Completed reports whether custody has been transferred
func (p ProvisioningProgress) Completed() bool {
	return p.State == ProvisioningStateTransferred
}

// IdentityToken rebuilds the minted token, or nil until both its id and public key are recorded
func (p ProvisioningProgress) IdentityToken() (*IdentityToken, error) {
	if p.TokenID == "" || p.PublicKey == "" {
		return nil, nil
	}
	id, err := ParseTokenID(p.TokenID)
	if err != nil {
		return nil, err
	}
	pub, err := hexutil.Decode(p.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	return &IdentityToken{TokenID: id, PublicKey: pub}, nil
}

// RecordToken stores the minted token on the progress
func (p *ProvisioningProgress) RecordToken(t *IdentityToken) {
	p.TokenID = hexutil.EncodeBig(t.TokenID)
	p.PublicKey = hexutil.Encode(t.PublicKey)
}

// RecordTokenID stores the id of a confirmed mint before its public key is known
func (p *ProvisioningProgress) RecordTokenID(id *big.Int) {
	p.TokenID = hexutil.EncodeBig(id)
}

// RecordTx stores the transaction hash that completed a step
func (p *ProvisioningProgress) RecordTx(step ProvisioningState, hash common.Hash) {
	if p.TxHashes == nil {
		p.TxHashes = make(map[string]string)
	}
	p.TxHashes[string(step)] = hash.Hex()
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
