package identity

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
)

// Resolver answers which identities a Telegram user may use
//
//go:generate mockgen -source=resolver.go -destination=../mocks/identity_resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// IsUserPermitted reports whether the user is a permitted auth method of the token
	IsUserPermitted(ctx context.Context, tokenID *big.Int, userID string) (bool, error)
	// ListTokensForUser returns the identities the user is permitted on, in contract order
	ListTokensForUser(ctx context.Context, userID string) ([]domain.IdentityToken, error)
}

type resolver struct {
	network  domain.Network
	registry registry.ContractRegistry
}

// NewResolver creates a resolver reading from network
func NewResolver(network domain.Network, registry registry.ContractRegistry) Resolver {
	return &resolver{network: network, registry: registry}
}

// IsUserPermitted reports whether the user is a permitted auth method of the token.
// Only the method id is compared, as the relay registers one method type.
func (r *resolver) IsUserPermitted(ctx context.Context, tokenID *big.Int, userID string) (bool, error) {
	pkpPermissions, err := r.registry.Resolve(r.network, domain.ContractPKPPermissions, nil)
	if err != nil {
		return false, err
	}

	out, err := pkpPermissions.Call(ctx, "getPermittedAuthMethods", tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to read permitted auth methods of %s: %w", tokenID, err)
	}
	if len(out) == 0 {
		return false, fmt.Errorf("getPermittedAuthMethods returned no values")
	}

	methods, err := decodeAuthMethods(out[0])
	if err != nil {
		return false, err
	}

	want := domain.TelegramAuthMethod(userID).ID
	for _, m := range methods {
		if bytes.Equal(m.ID, want) {
			return true, nil
		}
	}
	return false, nil
}

// ListTokensForUser returns the identities the user is permitted on, in contract order.
// Tokens without a public key are skipped.
func (r *resolver) ListTokensForUser(ctx context.Context, userID string) ([]domain.IdentityToken, error) {
	pkpPermissions, err := r.registry.Resolve(r.network, domain.ContractPKPPermissions, nil)
	if err != nil {
		return nil, err
	}

	method := domain.TelegramAuthMethod(userID)
	out, err := pkpPermissions.Call(ctx, "getTokenIdsForAuthMethod", method.Type, method.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read token ids for user: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("getTokenIdsForAuthMethod returned no values")
	}
	tokenIDs, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("getTokenIdsForAuthMethod returned %T", out[0])
	}

	tokens := make([]domain.IdentityToken, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		out, err := pkpPermissions.Call(ctx, "getPubkey", tokenID)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key of %s: %w", tokenID, err)
		}
		pubkey, err := bytesOutput(out, "getPubkey")
		if err != nil {
			return nil, err
		}
		if len(pubkey) == 0 {
			logger.DebugCtx(ctx, "Skipping identity token without public key", zap.String("token_id", tokenID.String()))
			continue
		}
		tokens = append(tokens, domain.IdentityToken{TokenID: tokenID, PublicKey: pubkey})
	}

	return tokens, nil
}

// decodeAuthMethods reads the AuthMethod tuples returned by getPermittedAuthMethods
func decodeAuthMethods(v interface{}) (methods []domain.PermittedAuthMethod, err error) {
	defer func() {
		if r := recover(); r != nil {
			methods, err = nil, fmt.Errorf("getPermittedAuthMethods returned %T: %v", v, r)
		}
	}()

	args := *abi.ConvertType(v, new([]authMethodArg)).(*[]authMethodArg)
	methods = make([]domain.PermittedAuthMethod, 0, len(args))
	for i, a := range args {
		if a.AuthMethodType == nil {
			return nil, fmt.Errorf("auth method %d has no type", i)
		}
		methods = append(methods, domain.PermittedAuthMethod{Type: a.AuthMethodType, ID: a.Id, UserPubkey: a.UserPubkey})
	}
	return methods, nil
}
