package identity_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
)

var (
	pkpNFTAddress         = common.HexToAddress("0x1111111111111111111111111111111111111111")
	pkpPermissionsAddress = common.HexToAddress("0x2222222222222222222222222222222222222222")
	transferTopic         = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

type provisionerFixture struct {
	ctrl           *gomock.Controller
	registry       *mocks.MockContractRegistry
	pkpNFT         *mocks.MockContract
	pkpPermissions *mocks.MockContract
	chain          *mocks.MockChainClient
	treasury       *ethereum.Signer
	provisioner    identity.Provisioner
}

func newProvisionerFixture(t *testing.T) *provisionerFixture {
	ctrl := gomock.NewController(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	f := &provisionerFixture{
		ctrl:           ctrl,
		registry:       mocks.NewMockContractRegistry(ctrl),
		pkpNFT:         mocks.NewMockContract(ctrl),
		pkpPermissions: mocks.NewMockContract(ctrl),
		chain:          mocks.NewMockChainClient(ctrl),
		treasury:       ethereum.NewSigner(key, big.NewInt(175188)),
	}
	f.pkpNFT.EXPECT().Name().Return(domain.ContractPKPNFT).AnyTimes()
	f.pkpNFT.EXPECT().Address().Return(pkpNFTAddress).AnyTimes()
	f.pkpPermissions.EXPECT().Name().Return(domain.ContractPKPPermissions).AnyTimes()
	f.pkpPermissions.EXPECT().Address().Return(pkpPermissionsAddress).AnyTimes()
	f.registry.EXPECT().Resolve(domain.NetworkDatil, domain.ContractPKPNFT, gomock.Any()).Return(f.pkpNFT, nil).AnyTimes()
	f.registry.EXPECT().Resolve(domain.NetworkDatil, domain.ContractPKPPermissions, gomock.Any()).Return(f.pkpPermissions, nil).AnyTimes()

	f.provisioner = identity.NewProvisioner(domain.NetworkDatil, f.registry, f.chain, f.treasury)
	return f
}

func testPublicKey(t *testing.T) ([]byte, common.Address) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return crypto.FromECDSAPub(&key.PublicKey), crypto.PubkeyToAddress(key.PublicKey)
}

func TestMintIdentity(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	cost := big.NewInt(5_000)
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	_, _ = testPublicKey(t)

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			// an unrelated event from another contract comes first
			{Address: pkpPermissionsAddress, Topics: []common.Hash{common.HexToHash("0x01")}},
			{Address: pkpNFTAddress, Topics: []common.Hash{
				transferTopic,
				{},
				common.BytesToHash(f.treasury.Address().Bytes()),
				common.BigToHash(big.NewInt(0xabc)),
			}},
		},
	}

	gomock.InOrder(
		f.pkpNFT.EXPECT().Call(ctx, "mintCost").Return([]interface{}{cost}, nil),
		f.pkpNFT.EXPECT().Transact(ctx, cost, "mintNext", big.NewInt(domain.KeyTypeECDSA)).Return(tx, nil),
		f.chain.EXPECT().WaitMined(ctx, tx).Return(receipt, nil),
	)

	minted, err := f.provisioner.MintIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0xabc), minted.TokenID.Int64())
	assert.Equal(t, tx.Hash(), minted.TxHash)
}

func TestReadPublicKey(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	pubkey, _ := testPublicKey(t)
	f.pkpPermissions.EXPECT().Call(ctx, "getPubkey", big.NewInt(0xabc)).Return([]interface{}{pubkey}, nil)

	got, err := f.provisioner.ReadPublicKey(ctx, big.NewInt(0xabc))
	require.NoError(t, err)
	assert.Equal(t, pubkey, got)
}

func TestReadPublicKey_Errors(t *testing.T) {
	tests := []struct {
		name string
		out  []interface{}
		err  error
	}{
		{name: "call fails", err: assert.AnError},
		{name: "empty key", out: []interface{}{[]byte{}}},
		{name: "wrong type", out: []interface{}{"0x04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProvisionerFixture(t)
			defer f.ctrl.Finish()

			f.pkpPermissions.EXPECT().Call(gomock.Any(), "getPubkey", big.NewInt(0xabc)).Return(tt.out, tt.err)

			got, err := f.provisioner.ReadPublicKey(context.Background(), big.NewInt(0xabc))
			assert.Error(t, err)
			assert.Nil(t, got)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestMintIdentity_NoTransferEvent(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	f.pkpNFT.EXPECT().Call(ctx, "mintCost").Return([]interface{}{big.NewInt(1)}, nil)
	f.pkpNFT.EXPECT().Transact(ctx, gomock.Any(), "mintNext", gomock.Any()).Return(tx, nil)
	f.chain.EXPECT().WaitMined(ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	_, err := f.provisioner.MintIdentity(ctx)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)
}

func TestMintIdentity_CostReadFails(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	f.pkpNFT.EXPECT().Call(gomock.Any(), "mintCost").Return(nil, assert.AnError)

	_, err := f.provisioner.MintIdentity(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPermitAuthMethod(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	tokenID := big.NewInt(7)
	tx := types.NewTx(&types.LegacyTx{Nonce: 2})

	f.pkpPermissions.EXPECT().Transact(ctx, gomock.Nil(), "addPermittedAuthMethod", tokenID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *big.Int, _ string, args ...interface{}) (*types.Transaction, error) {
			arg := asAuthMethod(t, args[1])
			assert.Equal(t, int64(domain.AuthMethodTypeTelegram), arg.AuthMethodType.Int64())
			assert.Equal(t, []byte("123456"), arg.Id)
			assert.Equal(t, []byte{}, arg.UserPubkey)
			scopes := args[2].([]*big.Int)
			require.Len(t, scopes, 1)
			assert.Equal(t, int64(domain.AuthMethodScopeSignAnything), scopes[0].Int64())
			return tx, nil
		})
	f.chain.EXPECT().WaitMined(ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	hash, err := f.provisioner.PermitAuthMethod(ctx, tokenID, domain.TelegramAuthMethod("123456"))
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
}

func TestPermitProgram(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	tokenID := big.NewInt(7)
	tx := types.NewTx(&types.LegacyTx{Nonce: 3})
	multihash, err := base58.Decode(domain.DefaultLitActionCID)
	require.NoError(t, err)
	// sha2-256 multihash: 0x12 0x20 followed by 32 digest bytes
	require.Len(t, multihash, 34)
	assert.Equal(t, byte(0x12), multihash[0])

	scopes := []*big.Int{big.NewInt(domain.AuthMethodScopeSignAnything)}
	f.pkpPermissions.EXPECT().Transact(ctx, gomock.Nil(), "addPermittedAction", tokenID, multihash, scopes).Return(tx, nil)
	f.chain.EXPECT().WaitMined(ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	hash, err := f.provisioner.PermitProgram(ctx, tokenID, domain.PermittedProgram{IPFSCID: domain.DefaultLitActionCID, Scopes: scopes})
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
}

func TestPermitProgram_InvalidCID(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	_, err := f.provisioner.PermitProgram(context.Background(), big.NewInt(1), domain.PermittedProgram{IPFSCID: "0OIl"})
	assert.ErrorContains(t, err, "invalid program cid")
}

func TestTransferToSelf(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	pubkey, self := testPublicKey(t)
	token := domain.IdentityToken{TokenID: big.NewInt(99), PublicKey: pubkey}
	tx := types.NewTx(&types.LegacyTx{Nonce: 4})

	f.pkpNFT.EXPECT().Transact(ctx, gomock.Nil(), "transferFrom", f.treasury.Address(), self, token.TokenID).Return(tx, nil)
	f.chain.EXPECT().WaitMined(ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	hash, err := f.provisioner.TransferToSelf(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
}

func TestTransferToSelf_Reverted(t *testing.T) {
	f := newProvisionerFixture(t)
	defer f.ctrl.Finish()

	ctx := context.Background()
	pubkey, _ := testPublicKey(t)
	tx := types.NewTx(&types.LegacyTx{Nonce: 5})

	f.pkpNFT.EXPECT().Transact(ctx, gomock.Nil(), "transferFrom", gomock.Any(), gomock.Any(), gomock.Any()).Return(tx, nil)
	f.chain.EXPECT().WaitMined(ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, domain.ErrTransactionFailed)

	_, err := f.provisioner.TransferToSelf(ctx, domain.IdentityToken{TokenID: big.NewInt(1), PublicKey: pubkey})
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)
}
