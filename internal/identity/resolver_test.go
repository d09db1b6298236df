package identity_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
)

// authMethod has the shape the ABI decoder produces for the AuthMethod tuple
type authMethod = struct {
	AuthMethodType *big.Int `json:"authMethodType"`
	Id             []byte   `json:"id"` //nolint:revive,stylecheck
	UserPubkey     []byte   `json:"userPubkey"`
}

func asAuthMethod(t *testing.T, v interface{}) authMethod {
	var m *authMethod
	require.NotPanics(t, func() { m = abi.ConvertType(v, new(authMethod)).(*authMethod) })
	return *m
}

func newResolver(t *testing.T) (*gomock.Controller, *mocks.MockContract, identity.Resolver) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockContractRegistry(ctrl)
	contract := mocks.NewMockContract(ctrl)
	registry.EXPECT().Resolve(domain.NetworkDatil, domain.ContractPKPPermissions, nil).Return(contract, nil).AnyTimes()
	return ctrl, contract, identity.NewResolver(domain.NetworkDatil, registry)
}

func TestIsUserPermitted(t *testing.T) {
	telegram := func(id string) authMethod {
		return authMethod{AuthMethodType: big.NewInt(domain.AuthMethodTypeTelegram), Id: []byte(id), UserPubkey: []byte{}}
	}

	tests := []struct {
		name    string
		methods []authMethod
		want    bool
	}{
		{name: "no methods", methods: []authMethod{}, want: false},
		{name: "single match", methods: []authMethod{telegram("42")}, want: true},
		{name: "single other user", methods: []authMethod{telegram("43")}, want: false},
		{name: "match among many", methods: []authMethod{telegram("1"), telegram("420"), telegram("42")}, want: true},
		{name: "prefix is not a match", methods: []authMethod{telegram("4"), telegram("421")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, contract, resolver := newResolver(t)
			defer ctrl.Finish()

			contract.EXPECT().Call(gomock.Any(), "getPermittedAuthMethods", big.NewInt(7)).Return([]interface{}{tt.methods}, nil)

			got, err := resolver.IsUserPermitted(context.Background(), big.NewInt(7), "42")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUserPermitted_ReadFails(t *testing.T) {
	ctrl, contract, resolver := newResolver(t)
	defer ctrl.Finish()

	contract.EXPECT().Call(gomock.Any(), "getPermittedAuthMethods", gomock.Any()).Return(nil, assert.AnError)

	_, err := resolver.IsUserPermitted(context.Background(), big.NewInt(7), "42")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestIsUserPermitted_MalformedMethods(t *testing.T) {
	tests := []struct {
		name    string
		methods interface{}
		wantErr string
	}{
		{name: "not a list", methods: big.NewInt(1), wantErr: "getPermittedAuthMethods returned *big.Int"},
		{name: "method without type", methods: []authMethod{{Id: []byte("42"), UserPubkey: []byte{}}}, wantErr: "auth method 0 has no type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, contract, resolver := newResolver(t)
			defer ctrl.Finish()

			contract.EXPECT().Call(gomock.Any(), "getPermittedAuthMethods", big.NewInt(7)).Return([]interface{}{tt.methods}, nil)

			_, err := resolver.IsUserPermitted(context.Background(), big.NewInt(7), "42")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestListTokensForUser(t *testing.T) {
	pubA, _ := testPublicKey(t)
	pubB, _ := testPublicKey(t)

	tests := []struct {
		name    string
		ids     []*big.Int
		pubkeys map[int64][]byte
		want    []int64
	}{
		{name: "none", ids: []*big.Int{}, want: []int64{}},
		{name: "one", ids: []*big.Int{big.NewInt(1)}, pubkeys: map[int64][]byte{1: pubA}, want: []int64{1}},
		{
			name:    "order kept and duplicates kept",
			ids:     []*big.Int{big.NewInt(3), big.NewInt(1), big.NewInt(3)},
			pubkeys: map[int64][]byte{1: pubA, 3: pubB},
			want:    []int64{3, 1, 3},
		},
		{
			name:    "empty public key skipped",
			ids:     []*big.Int{big.NewInt(1), big.NewInt(2)},
			pubkeys: map[int64][]byte{1: pubA, 2: {}},
			want:    []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, contract, resolver := newResolver(t)
			defer ctrl.Finish()

			contract.EXPECT().Call(gomock.Any(), "getTokenIdsForAuthMethod", big.NewInt(domain.AuthMethodTypeTelegram), []byte("42")).
				Return([]interface{}{tt.ids}, nil)
			contract.EXPECT().Call(gomock.Any(), "getPubkey", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, args ...interface{}) ([]interface{}, error) {
					return []interface{}{tt.pubkeys[args[0].(*big.Int).Int64()]}, nil
				}).Times(len(tt.ids))

			tokens, err := resolver.ListTokensForUser(context.Background(), "42")
			require.NoError(t, err)

			got := make([]int64, 0, len(tokens))
			for _, tok := range tokens {
				got = append(got, tok.TokenID.Int64())
				assert.NotEmpty(t, tok.PublicKey)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
