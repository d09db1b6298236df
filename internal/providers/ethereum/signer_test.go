package ethereum_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
)

var chainID = big.NewInt(175188)

func TestParseSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := ethereum.NewSigner(key, chainID).PrivateKeyHex()

	for _, input := range []string{hexKey, hexKey[2:], "  " + hexKey + "\n"} {
		s, err := ethereum.ParseSigner(input, chainID)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.Address())
	}

	_, err = ethereum.ParseSigner("0xnot-a-key", chainID)
	assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
	assert.NotContains(t, err.Error(), "not-a-key")
}

func TestGenerateSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	gen := mocks.NewMockKeyGenerator(ctrl)
	gen.EXPECT().GenerateKey().Return(key, nil)

	s, err := ethereum.GenerateSigner(gen, chainID)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.Address())
	assert.Equal(t, chainID, s.ChainID())
	assert.NotContains(t, s.String(), s.PrivateKeyHex()[2:])

	gen.EXPECT().GenerateKey().Return(nil, assert.AnError)
	_, err = ethereum.GenerateSigner(gen, chainID)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSigner_SignPersonalMessage(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	s := ethereum.NewSigner(key, chainID)

	msg := []byte("hello relay")
	sig, err := s.SignPersonalMessage(msg)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.True(t, sig[64] == 27 || sig[64] == 28)

	addr, err := ethereum.RecoverPersonalSigner(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), addr)

	_, err = ethereum.RecoverPersonalSigner(msg, sig[:10])
	assert.Error(t, err)
}

func TestSigner_TransactOpts(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	s := ethereum.NewSigner(key, chainID)

	ctx := context.Background()
	opts, err := s.TransactOpts(ctx, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, s.Address(), opts.From)
	assert.Equal(t, int64(5), opts.Value.Int64())
	assert.Equal(t, ctx, opts.Context)
}
