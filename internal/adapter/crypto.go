package adapter

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// KeyGenerator defines an interface for wallet key generation to enable mocking
//
//go:generate mockgen -source=crypto.go -destination=../mocks/crypto.go -package=mocks -mock_names=KeyGenerator=MockKeyGenerator
type KeyGenerator interface {
	GenerateKey() (*ecdsa.PrivateKey, error)
}

// RealKeyGenerator implements KeyGenerator with secp256k1 keys from crypto/rand
type RealKeyGenerator struct{}

// NewKeyGenerator creates a new real key generator
func NewKeyGenerator() KeyGenerator {
	return &RealKeyGenerator{}
}

func (g *RealKeyGenerator) GenerateKey() (*ecdsa.PrivateKey, error) {
	return crypto.GenerateKey()
}
