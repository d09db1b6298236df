package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// Signer is a wallet able to authorize transactions and messages on one chain.
// The key never leaves the struct except through PrivateKeyHex.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewSigner wraps an existing key
func NewSigner(key *ecdsa.PrivateKey, chainID *big.Int) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).Set(chainID),
	}
}

// ParseSigner builds a signer from a hex private key, with or without 0x prefix
func ParseSigner(hexKey string, chainID *big.Int) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		// the key material must not end up in the error text
		return nil, domain.ErrInvalidPrivateKey
	}
	return NewSigner(key, chainID), nil
}

// GenerateSigner creates a signer for a fresh key
func GenerateSigner(gen adapter.KeyGenerator, chainID *big.Int) (*Signer, error) {
	key, err := gen.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return NewSigner(key, chainID), nil
}

// Address returns the signer's account address
func (s *Signer) Address() common.Address {
	return s.address
}

// ChainID returns the chain the signer signs transactions for
func (s *Signer) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

// PrivateKeyHex exports the key as 0x-prefixed hex
func (s *Signer) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(s.key))
}

// TransactOpts returns transaction options signed by this wallet
func (s *Signer) TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.Value = value
	return opts, nil
}

// SignPersonalMessage signs msg with the EIP-191 personal message prefix.
// The recovery id is shifted to 27/28 as wallets do.
func (s *Signer) SignPersonalMessage(msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// String never includes the key
func (s *Signer) String() string {
	return "Signer(" + s.address.Hex() + ")"
}

// RecoverPersonalSigner returns the address that produced sig over msg with SignPersonalMessage
func RecoverPersonalSigner(msg []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}
	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash(msg), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
