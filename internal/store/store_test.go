package store

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// RunStoreTests runs the store test cases against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("Provisioning", func(t *testing.T) {
		t.Run("create and get", func(t *testing.T) {
			testCreateAndGetProvisioning(t, initDB(t))
		})
		t.Run("get unknown", func(t *testing.T) {
			testGetUnknownProvisioning(t, initDB(t))
		})
		t.Run("save progress", func(t *testing.T) {
			testSaveProvisioningProgress(t, initDB(t))
		})
		t.Run("save unknown", func(t *testing.T) {
			testSaveUnknownProvisioning(t, initDB(t))
		})
		t.Run("list by user", func(t *testing.T) {
			testListProvisioningsByUser(t, initDB(t))
		})
	})

	t.Run("PayerWallet", func(t *testing.T) {
		t.Run("create and get", func(t *testing.T) {
			testCreateAndGetPayerWallet(t, initDB(t))
		})
	})

	t.Run("PayeeDelegation", func(t *testing.T) {
		t.Run("create and list", func(t *testing.T) {
			testCreateAndListPayeeDelegations(t, initDB(t))
		})
	})
}

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestProvisioning(userID string) domain.ProvisioningProgress {
	return domain.ProvisioningProgress{
		ProvisioningID: uuid.NewString(),
		TelegramUserID: userID,
		Network:        domain.NetworkDatil,
		State:          domain.ProvisioningStatePending,
	}
}

// =============================================================================
// Provisioning
// =============================================================================

func testCreateAndGetProvisioning(t *testing.T, store Store) {
	ctx := context.Background()
	progress := buildTestProvisioning("1001")

	err := store.CreateProvisioning(ctx, CreateProvisioningInput{Progress: progress, WorkflowID: "wf-1"})
	require.NoError(t, err)

	got, err := store.GetProvisioning(ctx, progress.ProvisioningID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, progress, *got)
}

func testGetUnknownProvisioning(t *testing.T, store Store) {
	got, err := store.GetProvisioning(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testSaveProvisioningProgress(t *testing.T, store Store) {
	ctx := context.Background()
	progress := buildTestProvisioning("1002")
	require.NoError(t, store.CreateProvisioning(ctx, CreateProvisioningInput{Progress: progress}))

	progress.State = domain.ProvisioningStateMinted
	progress.TokenID = "0x2a"
	progress.PublicKey = "0x04abcd"
	progress.TxHashes = map[string]string{"minted": "0x01"}
	progress.FailedStep = domain.ProvisioningStateAuthPermitted
	progress.Error = "execution reverted"
	require.NoError(t, store.SaveProvisioningProgress(ctx, progress))

	got, err := store.GetProvisioning(ctx, progress.ProvisioningID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, progress, *got)

	// clearing the failure on resume
	progress.FailedStep = ""
	progress.Error = ""
	progress.State = domain.ProvisioningStateAuthPermitted
	require.NoError(t, store.SaveProvisioningProgress(ctx, progress))

	got, err = store.GetProvisioning(ctx, progress.ProvisioningID)
	require.NoError(t, err)
	assert.False(t, got.Failed())
	assert.Empty(t, got.Error)
	assert.Equal(t, domain.ProvisioningStateAuthPermitted, got.State)
}

func testSaveUnknownProvisioning(t *testing.T, store Store) {
	err := store.SaveProvisioningProgress(context.Background(), buildTestProvisioning("1003"))
	assert.ErrorIs(t, err, domain.ErrProvisioningNotFound)
}

func testListProvisioningsByUser(t *testing.T, store Store) {
	ctx := context.Background()
	first := buildTestProvisioning("1004")
	second := buildTestProvisioning("1004")
	other := buildTestProvisioning("1005")

	require.NoError(t, store.CreateProvisioning(ctx, CreateProvisioningInput{Progress: first}))
	require.NoError(t, store.CreateProvisioning(ctx, CreateProvisioningInput{Progress: second}))
	require.NoError(t, store.CreateProvisioning(ctx, CreateProvisioningInput{Progress: other}))

	list, err := store.ListProvisioningsByUser(ctx, "1004", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []string{list[0].ProvisioningID, list[1].ProvisioningID}
	assert.ElementsMatch(t, []string{first.ProvisioningID, second.ProvisioningID}, ids)

	limited, err := store.ListProvisioningsByUser(ctx, "1004", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := store.ListProvisioningsByUser(ctx, "9999", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Payer wallets
// =============================================================================

func testCreateAndGetPayerWallet(t *testing.T, store Store) {
	ctx := context.Background()
	input := CreatePayerWalletInput{
		Address:         "0xAbC0000000000000000000000000000000000001",
		Network:         domain.NetworkDatil,
		CapacityTokenID: "77",
		FundingTxHash:   "0x" + strings.Repeat("a", 64),
		MintTxHash:      "0x" + strings.Repeat("b", 64),
	}
	require.NoError(t, store.CreatePayerWallet(ctx, input))
	// recording the same wallet twice is a no-op
	require.NoError(t, store.CreatePayerWallet(ctx, input))

	wallet, err := store.GetPayerWallet(ctx, "0xabc0000000000000000000000000000000000001")
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, input.Address, wallet.Address)
	assert.Equal(t, "77", wallet.CapacityTokenID)
	assert.Equal(t, string(domain.NetworkDatil), wallet.Network)
	assert.WithinDuration(t, time.Now(), wallet.CreatedAt, time.Hour)

	missing, err := store.GetPayerWallet(ctx, "0x0000000000000000000000000000000000000002")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Payee delegations
// =============================================================================

func testCreateAndListPayeeDelegations(t *testing.T, store Store) {
	ctx := context.Background()
	payer := "0x1000000000000000000000000000000000000001"
	payees := []string{
		"0x2000000000000000000000000000000000000002",
		"0x3000000000000000000000000000000000000003",
	}

	require.NoError(t, store.CreatePayeeDelegations(ctx, CreatePayeeDelegationsInput{
		PayerAddress:    payer,
		PayeeAddresses:  payees,
		Network:         domain.NetworkDatil,
		CapacityTokenID: "5",
		TxHash:          "0x" + strings.Repeat("c", 64),
	}))
	require.NoError(t, store.CreatePayeeDelegations(ctx, CreatePayeeDelegationsInput{
		PayerAddress: payer,
		Network:      domain.NetworkDatil,
	}))

	list, err := store.ListPayeeDelegations(ctx, payer, domain.NetworkDatil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, payees[0], list[0].PayeeAddress)
	assert.Equal(t, payees[1], list[1].PayeeAddress)
	assert.Equal(t, "5", list[1].CapacityTokenID)

	other, err := store.ListPayeeDelegations(ctx, payer, domain.NetworkDatilTest)
	require.NoError(t, err)
	assert.Empty(t, other)
}

// =============================================================================
// Locks
// =============================================================================

func testWithLockSerializesHolders(t *testing.T, store Store) {
	ctx := context.Background()
	key := "test-lock:" + uuid.NewString()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithLock(ctx, key, func(context.Context) error {
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(20 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)

	// an error from fn is returned and the lock is still released
	err := store.WithLock(ctx, key, func(context.Context) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, store.WithLock(ctx, key, func(context.Context) error { return nil }))
}
