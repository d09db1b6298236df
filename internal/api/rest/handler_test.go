package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/api/rest"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/dto"
	apierrors "github.com/yhl125/iampocket-relay-server/internal/api/shared/errors"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
	"github.com/yhl125/iampocket-relay-server/internal/providers/lit"
)

const initData = "user=%7B%22id%22%3A12345%7D&auth_date=1720000000&hash=abc"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), func(c *gin.Context) { c.Next() })
	return router, exec, ctrl
}

func post(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var body apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestCreatePKP(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	token := &domain.IdentityToken{TokenID: big.NewInt(0x2a), PublicKey: crypto.FromECDSAPub(&key.PublicKey)}
	exec.EXPECT().CreateIdentity(gomock.Any(), initData).Return(token, nil)

	w := post(router, "/telegram/create-pkp", dto.TelegramRequest{InitDataRaw: initData})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0x2a", body["tokenId"])
	assert.Equal(t, fmt.Sprintf("0x%x", token.PublicKey), body["publicKey"])
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), body["ethAddress"])
}

func TestCreatePKP_ProvisioningFailure(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().CreateIdentity(gomock.Any(), initData).
		Return(nil, fmt.Errorf("%w: provisioning 01J stopped at minted after connected: boom", domain.ErrProvisioningFailed))

	w := post(router, "/telegram/create-pkp", dto.TelegramRequest{InitDataRaw: initData})
	require.Equal(t, http.StatusBadGateway, w.Code)

	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeProvisioningFailed, apiErr.Code)
	assert.Contains(t, apiErr.Details, "01J")
}

func TestMissingFieldsAreRejectedBeforeTheExecutor(t *testing.T) {
	router, _, ctrl := newRouter(t)
	defer ctrl.Finish()

	for path, body := range map[string]interface{}{
		"/telegram/validate":   map[string]string{"initDataRaw": initData},
		"/telegram/create-pkp": map[string]string{},
		"/telegram/resume-pkp": map[string]string{"initDataRaw": initData},
		"/telegram/get-pkps":   map[string]string{},
		"/register-payer":      map[string]string{"initDataRaw": initData},
		"/add-payee":           map[string]string{"network": "datil", "payee": "0x00000000000000000000000000000000000000bb"},
		"/payer-authsig":       map[string]string{"payee": "0x00000000000000000000000000000000000000bb"},
	} {
		t.Run(path, func(t *testing.T) {
			w := post(router, path, body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
		})
	}
}

func TestValidateTelegram(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ValidateTelegram(gomock.Any(), initData, "0x2a").Return(true, nil)

	w := post(router, "/telegram/validate", dto.ValidateTelegramRequest{InitDataRaw: initData, PKPTokenID: "0x2a"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())
}

func TestValidateTelegram_PermissionDenied(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ValidateTelegram(gomock.Any(), initData, "0x2a").
		Return(false, fmt.Errorf("%w: user is not permitted to use identity 0x2a", domain.ErrPermissionDenied))

	w := post(router, "/telegram/validate", dto.ValidateTelegramRequest{InitDataRaw: initData, PKPTokenID: "0x2a"})
	require.Equal(t, http.StatusForbidden, w.Code)

	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeForbidden, apiErr.Code)
	assert.Equal(t, "permission denied", apiErr.Message)
}

func TestResumePKP_Completed(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ResumeIdentity(gomock.Any(), initData, "01J").Return(nil, domain.ErrProvisioningComplete)

	w := post(router, "/telegram/resume-pkp", dto.ResumeProvisioningRequest{InitDataRaw: initData, ProvisioningID: "01J"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetPKPs_Empty(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetIdentities(gomock.Any(), initData).Return([]domain.IdentityToken{}, nil)

	w := post(router, "/telegram/get-pkps", dto.TelegramRequest{InitDataRaw: initData})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRegisterPayer(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().RegisterPayer(gomock.Any(), domain.NetworkDatil, initData).Return(&dto.RegisterPayerResponse{
		PayerWalletAddress: "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23",
		PayerPrivateKey:    "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
	}, nil)

	w := post(router, "/register-payer", dto.RegisterPayerRequest{Network: domain.NetworkDatil, InitDataRaw: initData})
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.RegisterPayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", body.PayerWalletAddress)
	assert.NotEmpty(t, body.PayerPrivateKey)
}

func TestRegisterPayer_UnsupportedNetwork(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().RegisterPayer(gomock.Any(), domain.NetworkDatilDev, "").
		Return(nil, fmt.Errorf("%w: payment delegation is not available on datil-dev", domain.ErrUnsupportedNetwork))

	w := post(router, "/register-payer", dto.RegisterPayerRequest{Network: domain.NetworkDatilDev})
	require.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeUnsupportedNetwork, apiErr.Code)
	assert.Contains(t, apiErr.Details, "datil-dev")
}

func TestAddPayee_InvalidAddress(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().AddPayee(gomock.Any(), domain.NetworkDatil, "0xkey", "not-an-address", "").
		Return(false, fmt.Errorf("failed to add payee: %w: not-an-address", domain.ErrInvalidAddress))

	w := post(router, "/add-payee", dto.AddPayeeRequest{
		Network:         domain.NetworkDatil,
		PayerPrivateKey: "0xkey",
		Payee:           "not-an-address",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeInvalidAddress, decodeError(t, w).Code)
}

func TestGetPayerAuthSig(t *testing.T) {
	router, exec, ctrl := newRouter(t)
	defer ctrl.Finish()

	authSig := &lit.AuthSig{Sig: "0xsig", DerivedVia: lit.DerivedViaPersonalSign, SignedMessage: "msg", Address: "0xabc"}
	exec.EXPECT().GetPayerAuthSig(gomock.Any(), "0xkey", initData, "0xpayee").Return(authSig, nil)

	w := post(router, "/payer-authsig", dto.PayerAuthSigRequest{PayerPrivateKey: "0xkey", InitDataRaw: initData, Payee: "0xpayee"})
	require.Equal(t, http.StatusOK, w.Code)

	var body lit.AuthSig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, *authSig, body)
}

func TestGetNFTMetadata(t *testing.T) {
	router, _, ctrl := newRouter(t)
	defer ctrl.Finish()

	for _, name := range []string{"maru", "maru-sleeping", "maru-glasses"} {
		w := get(router, "/nft/"+name)
		require.Equal(t, http.StatusOK, w.Code, name)

		var body dto.NFTMetadata
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, name, body.Name)
		assert.Equal(t, "art.v0", body.NFTType)
		assert.Equal(t, "https://iampocket-relay-server.vercel.app/nft/"+name, body.Schema)
	}

	assert.Equal(t, http.StatusNotFound, get(router, "/nft/unknown").Code)
}

func TestHealthCheck(t *testing.T) {
	router, _, ctrl := newRouter(t)
	defer ctrl.Finish()

	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "iampocket-relay-server", body.Service)
}
