package identity

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
)

// transferEventTopic is the ERC-721 Transfer(address,address,uint256) signature
var transferEventTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// MintedIdentity is the token id of a confirmed mint and the transaction that minted it
type MintedIdentity struct {
	TokenID *big.Int
	TxHash  common.Hash
}

// Provisioner runs the individual on-chain steps of identity provisioning with the treasury wallet
//
//go:generate mockgen -source=provisioner.go -destination=../mocks/identity_provisioner.go -package=mocks -mock_names=Provisioner=MockProvisioner
type Provisioner interface {
	// MintIdentity mints an identity token owned by the treasury.
	// It returns once the mint is confirmed; the public key is read separately with ReadPublicKey.
	MintIdentity(ctx context.Context) (*MintedIdentity, error)
	// ReadPublicKey returns the public key of a minted token
	ReadPublicKey(ctx context.Context, tokenID *big.Int) ([]byte, error)
	// PermitAuthMethod allows an auth method to use the token
	PermitAuthMethod(ctx context.Context, tokenID *big.Int, method domain.PermittedAuthMethod) (common.Hash, error)
	// PermitProgram allows a content-addressed program to sign with the token
	PermitProgram(ctx context.Context, tokenID *big.Int, program domain.PermittedProgram) (common.Hash, error)
	// TransferToSelf hands custody of the token to its own derived address
	TransferToSelf(ctx context.Context, token domain.IdentityToken) (common.Hash, error)
}

// authMethodArg mirrors the AuthMethod tuple of PKPPermissions; field names follow the ABI
type authMethodArg struct {
	AuthMethodType *big.Int
	Id             []byte //nolint:revive,stylecheck
	UserPubkey     []byte
}

type provisioner struct {
	network  domain.Network
	registry registry.ContractRegistry
	chain    ethereum.ChainClient
	treasury *ethereum.Signer
}

// NewProvisioner creates a provisioner acting on network with the treasury wallet
func NewProvisioner(network domain.Network, registry registry.ContractRegistry, chain ethereum.ChainClient, treasury *ethereum.Signer) Provisioner {
	return &provisioner{
		network:  network,
		registry: registry,
		chain:    chain,
		treasury: treasury,
	}
}

// MintIdentity mints an identity token owned by the treasury
func (p *provisioner) MintIdentity(ctx context.Context) (*MintedIdentity, error) {
	pkpNFT, err := p.registry.Resolve(p.network, domain.ContractPKPNFT, p.treasury)
	if err != nil {
		return nil, err
	}

	out, err := pkpNFT.Call(ctx, "mintCost")
	if err != nil {
		return nil, fmt.Errorf("failed to read mint cost: %w", err)
	}
	cost, err := bigOutput(out, "mintCost")
	if err != nil {
		return nil, err
	}

	receipt, tx, err := p.transact(ctx, pkpNFT, cost, "mintNext", big.NewInt(domain.KeyTypeECDSA))
	if err != nil {
		return nil, err
	}

	tokenID, err := mintedTokenID(receipt, pkpNFT.Address())
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Minted identity token",
		zap.String("network", string(p.network)),
		zap.String("token_id", tokenID.String()),
		zap.String("cost_wei", cost.String()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return &MintedIdentity{TokenID: tokenID, TxHash: tx.Hash()}, nil
}

// ReadPublicKey returns the public key of a minted token
func (p *provisioner) ReadPublicKey(ctx context.Context, tokenID *big.Int) ([]byte, error) {
	pkpPermissions, err := p.registry.Resolve(p.network, domain.ContractPKPPermissions, nil)
	if err != nil {
		return nil, err
	}
	out, err := pkpPermissions.Call(ctx, "getPubkey", tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key of %s: %w", tokenID, err)
	}
	pubkey, err := bytesOutput(out, "getPubkey")
	if err != nil {
		return nil, err
	}
	if len(pubkey) == 0 {
		return nil, fmt.Errorf("identity token %s has no public key", tokenID)
	}
	return pubkey, nil
}

// PermitAuthMethod allows an auth method to use the token
func (p *provisioner) PermitAuthMethod(ctx context.Context, tokenID *big.Int, method domain.PermittedAuthMethod) (common.Hash, error) {
	pkpPermissions, err := p.registry.Resolve(p.network, domain.ContractPKPPermissions, p.treasury)
	if err != nil {
		return common.Hash{}, err
	}

	userPubkey := method.UserPubkey
	if userPubkey == nil {
		userPubkey = []byte{}
	}
	arg := authMethodArg{
		AuthMethodType: method.Type,
		Id:             method.ID,
		UserPubkey:     userPubkey,
	}

	_, tx, err := p.transact(ctx, pkpPermissions, nil, "addPermittedAuthMethod", tokenID, arg, method.Scopes)
	if err != nil {
		return common.Hash{}, err
	}

	logger.InfoCtx(ctx, "Permitted auth method",
		zap.String("token_id", tokenID.String()),
		zap.String("auth_method_type", method.Type.String()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash(), nil
}

// PermitProgram allows a content-addressed program to sign with the token
func (p *provisioner) PermitProgram(ctx context.Context, tokenID *big.Int, program domain.PermittedProgram) (common.Hash, error) {
	multihash, err := base58.Decode(program.IPFSCID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid program cid %q: %w", program.IPFSCID, err)
	}

	pkpPermissions, err := p.registry.Resolve(p.network, domain.ContractPKPPermissions, p.treasury)
	if err != nil {
		return common.Hash{}, err
	}

	_, tx, err := p.transact(ctx, pkpPermissions, nil, "addPermittedAction", tokenID, multihash, program.Scopes)
	if err != nil {
		return common.Hash{}, err
	}

	logger.InfoCtx(ctx, "Permitted program",
		zap.String("token_id", tokenID.String()),
		zap.String("cid", program.IPFSCID),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash(), nil
}

// TransferToSelf hands custody of the token to its own derived address
func (p *provisioner) TransferToSelf(ctx context.Context, token domain.IdentityToken) (common.Hash, error) {
	self, err := token.EthAddress()
	if err != nil {
		return common.Hash{}, err
	}

	pkpNFT, err := p.registry.Resolve(p.network, domain.ContractPKPNFT, p.treasury)
	if err != nil {
		return common.Hash{}, err
	}

	_, tx, err := p.transact(ctx, pkpNFT, nil, "transferFrom", p.treasury.Address(), self, token.TokenID)
	if err != nil {
		return common.Hash{}, err
	}

	logger.InfoCtx(ctx, "Transferred identity token to itself",
		zap.String("token_id", token.TokenID.String()),
		zap.String("owner", self.Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash(), nil
}

func (p *provisioner) transact(ctx context.Context, contract registry.Contract, value *big.Int, method string, args ...interface{}) (*types.Receipt, *types.Transaction, error) {
	tx, err := contract.Transact(ctx, value, method, args...)
	if err != nil {
		metrics.ChainTransactions.WithLabelValues(contract.Name(), method, "failed").Inc()
		return nil, nil, err
	}

	receipt, err := p.chain.WaitMined(ctx, tx)
	if err != nil {
		metrics.ChainTransactions.WithLabelValues(contract.Name(), method, "failed").Inc()
		return nil, nil, err
	}
	metrics.ChainTransactions.WithLabelValues(contract.Name(), method, "confirmed").Inc()

	return receipt, tx, nil
}

// mintedTokenID finds the ERC-721 Transfer emitted by the token contract and returns its token id
func mintedTokenID(receipt *types.Receipt, token common.Address) (*big.Int, error) {
	for _, l := range receipt.Logs {
		if l == nil || l.Address != token || len(l.Topics) != 4 || l.Topics[0] != transferEventTopic {
			continue
		}
		return l.Topics[3].Big(), nil
	}
	return nil, fmt.Errorf("%w: mint receipt %s has no transfer event", domain.ErrTransactionFailed, receipt.TxHash.Hex())
}

func bigOutput(out []interface{}, method string) (*big.Int, error) {
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	v, ok := out[0].(*big.Int)
	if !ok || v == nil {
		return nil, fmt.Errorf("%s returned %T, expected *big.Int", method, out[0])
	}
	return v, nil
}

func bytesOutput(out []interface{}, method string) ([]byte, error) {
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	v, ok := out[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, expected bytes", method, out[0])
	}
	return v, nil
}
