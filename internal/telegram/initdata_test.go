package telegram_test

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
	"github.com/yhl125/iampocket-relay-server/internal/telegram"
)

const botToken = "123456:test-bot-token"

func buildInitData(userID int64, authDate time.Time, token string) string {
	payload := map[string]string{
		"query_id": "AAH1",
		"user":     `{"id":` + strconv.FormatInt(userID, 10) + `,"first_name":"Maru","username":"maru"}`,
	}

	values := url.Values{}
	for k, v := range payload {
		values.Set(k, v)
	}
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	values.Set("hash", initdata.Sign(payload, token, authDate))
	return values.Encode()
}

func TestValidator_Validate(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		raw         string
		expectedErr bool
		expectedID  string
	}{
		{
			name:       "valid init data",
			raw:        buildInitData(777, now.Add(-time.Hour), botToken),
			expectedID: "777",
		},
		{
			name:        "signed with another bot token",
			raw:         buildInitData(777, now.Add(-time.Hour), "999:other"),
			expectedErr: true,
		},
		{
			name:        "expired",
			raw:         buildInitData(777, now.Add(-25*time.Hour), botToken),
			expectedErr: true,
		},
		{
			name:        "unsigned",
			raw:         "user=%7B%22id%22%3A777%7D&auth_date=1",
			expectedErr: true,
		},
		{
			name: "tampered user",
			raw: func() string {
				values, _ := url.ParseQuery(buildInitData(777, now.Add(-time.Hour), botToken))
				values.Set("user", `{"id":778,"first_name":"Maru"}`)
				return values.Encode()
			}(),
			expectedErr: true,
		},
		{
			name:        "malformed query",
			raw:         "%zz",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now).AnyTimes()
			clock.EXPECT().Unix(gomock.Any(), int64(0)).DoAndReturn(time.Unix).AnyTimes()

			v := telegram.NewValidator(botToken, 24*time.Hour, clock)
			data, err := v.Validate(tt.raw)

			if tt.expectedErr {
				assert.ErrorIs(t, err, domain.ErrAuthentication)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, data.UserID())
			assert.Equal(t, "Maru", data.User.FirstName)
			assert.Equal(t, "maru", data.User.Username)
			assert.Equal(t, "AAH1", data.QueryID)
			assert.Equal(t, now.Add(-time.Hour).Unix(), data.AuthDate.Unix())
		})
	}
}

func TestValidator_ParseSkipsSignature(t *testing.T) {
	v := telegram.NewValidator(botToken, time.Hour, adapter.NewClock())

	data, err := v.Parse(buildInitData(42, time.Unix(0, 0), "wrong:token"))
	require.NoError(t, err)
	assert.Equal(t, "42", data.UserID())

	_, err = v.Parse("auth_date=1")
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	_, err = v.Parse("user=not-json")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestValidator_KeepsSignatureErrorKind(t *testing.T) {
	v := telegram.NewValidator(botToken, 0, adapter.NewClock())

	_, err := v.Validate(buildInitData(777, time.Now(), "999:other"))
	assert.ErrorIs(t, err, domain.ErrAuthentication)
	assert.ErrorIs(t, err, initdata.ErrSignInvalid)

	// a zero ttl accepts old init data
	data, err := v.Validate(buildInitData(777, time.Unix(1_600_000_000, 0), botToken))
	require.NoError(t, err)
	assert.Equal(t, "777", data.UserID())
}
