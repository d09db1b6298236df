package workflows_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
	"github.com/yhl125/iampocket-relay-server/internal/workflows"
)

// ProvisionIdentityTestSuite is the test suite for the identity provisioning workflow
type ProvisionIdentityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore

	token    domain.IdentityToken
	recorded []domain.ProvisioningProgress
}

// SetupTest is called before each test
func (s *ProvisionIdentityTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{})

	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.token = domain.IdentityToken{TokenID: big.NewInt(0x1234), PublicKey: crypto.FromECDSAPub(&key.PublicKey)}
	s.recorded = nil
}

// TearDownTest is called after each test
func (s *ProvisionIdentityTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestProvisionIdentityTestSuite runs the test suite
func TestProvisionIdentityTestSuite(t *testing.T) {
	suite.Run(t, new(ProvisionIdentityTestSuite))
}

func (s *ProvisionIdentityTestSuite) pendingProgress() domain.ProvisioningProgress {
	return domain.ProvisioningProgress{
		ProvisioningID: "01J2ZC6QH7XK1M3YB0T9F4W8RA",
		TelegramUserID: "123456",
		Network:        domain.NetworkDatil,
		State:          domain.ProvisioningStatePending,
	}
}

func (s *ProvisionIdentityTestSuite) recordProgress() {
	s.env.OnActivity(s.executor.RecordProvisioningProgress, mock.Anything, mock.Anything).
		Return(func(_ context.Context, p domain.ProvisioningProgress) error {
			s.recorded = append(s.recorded, p)
			return nil
		})
}

func (s *ProvisionIdentityTestSuite) provisioningFailure() (*temporal.ApplicationError, domain.ProvisioningProgress) {
	err := s.env.GetWorkflowError()
	s.Require().Error(err)

	var appErr *temporal.ApplicationError
	s.Require().True(errors.As(err, &appErr))
	s.Equal(workflows.ProvisioningFailedErrorType, appErr.Type())
	s.True(appErr.NonRetryable())

	var progress domain.ProvisioningProgress
	s.Require().NoError(appErr.Details(&progress))
	return appErr, progress
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_FullRun() {
	userID := "123456"
	mintHash := common.HexToHash("0x01")

	s.env.OnActivity(s.executor.ConnectNodeNetwork, mock.Anything).Return(nil).Once()
	s.env.OnActivity(s.executor.MintIdentityToken, mock.Anything).
		Return(&identity.MintedIdentity{TokenID: s.token.TokenID, TxHash: mintHash}, nil).Once()
	s.env.OnActivity(s.executor.ReadIdentityPublicKey, mock.Anything, "0x1234").
		Return(s.token.PublicKey, nil).Once()
	s.env.OnActivity(s.executor.PermitAuthMethod, mock.Anything, "0x1234", userID).
		Return(common.HexToHash("0x02"), nil).Once()
	s.env.OnActivity(s.executor.PermitProgram, mock.Anything, "0x1234").
		Return(common.HexToHash("0x03"), nil).Once()
	s.env.OnActivity(s.executor.TransferIdentityToSelf, mock.Anything, mock.MatchedBy(func(t domain.IdentityToken) bool {
		return t.TokenID.Cmp(s.token.TokenID) == 0
	})).Return(common.HexToHash("0x04"), nil).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, s.pendingProgress())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var token domain.IdentityToken
	s.NoError(s.env.GetWorkflowResult(&token))
	s.Equal(0, token.TokenID.Cmp(s.token.TokenID))
	s.Equal(s.token.PublicKey, token.PublicKey)

	s.Require().Len(s.recorded, 5)
	states := make([]domain.ProvisioningState, 0, len(s.recorded))
	for _, p := range s.recorded {
		states = append(states, p.State)
	}
	s.Equal([]domain.ProvisioningState{
		domain.ProvisioningStateConnected,
		domain.ProvisioningStateMinted,
		domain.ProvisioningStateAuthPermitted,
		domain.ProvisioningStateProgramPermitted,
		domain.ProvisioningStateTransferred,
	}, states)

	final := s.recorded[4]
	s.True(final.Completed())
	s.Len(final.TxHashes, 4)
	s.Equal(mintHash.Hex(), final.TxHashes[string(domain.ProvisioningStateMinted)])

	value, err := s.env.QueryWorkflow(workflows.ProvisioningProgressQuery)
	s.Require().NoError(err)
	var queried domain.ProvisioningProgress
	s.Require().NoError(value.Get(&queried))
	s.Equal(domain.ProvisioningStateTransferred, queried.State)
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_FailsOnPermitAuthMethod() {
	s.env.OnActivity(s.executor.ConnectNodeNetwork, mock.Anything).Return(nil)
	s.env.OnActivity(s.executor.MintIdentityToken, mock.Anything).
		Return(&identity.MintedIdentity{TokenID: s.token.TokenID, TxHash: common.HexToHash("0x01")}, nil)
	s.env.OnActivity(s.executor.ReadIdentityPublicKey, mock.Anything, "0x1234").Return(s.token.PublicKey, nil)
	s.env.OnActivity(s.executor.PermitAuthMethod, mock.Anything, mock.Anything, mock.Anything).
		Return(common.Hash{}, errors.New("execution reverted")).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, s.pendingProgress())

	s.True(s.env.IsWorkflowCompleted())
	appErr, progress := s.provisioningFailure()
	s.Contains(appErr.Error(), "auth_permitted")

	s.Equal(domain.ProvisioningStateMinted, progress.State)
	s.Equal(domain.ProvisioningStateAuthPermitted, progress.FailedStep)
	s.Contains(progress.Error, "execution reverted")
	s.Equal("0x1234", progress.TokenID)

	// connected, minted, then the failure itself
	s.Require().Len(s.recorded, 3)
	s.True(s.recorded[2].Failed())
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_FailsOnConnect() {
	s.env.OnActivity(s.executor.ConnectNodeNetwork, mock.Anything).Return(errors.New("network unreachable")).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, s.pendingProgress())

	_, progress := s.provisioningFailure()
	s.Equal(domain.ProvisioningStatePending, progress.State)
	s.Equal(domain.ProvisioningStateConnected, progress.FailedStep)
	s.Empty(progress.TokenID)
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_FailsOnPublicKeyRead() {
	s.env.OnActivity(s.executor.ConnectNodeNetwork, mock.Anything).Return(nil).Once()
	s.env.OnActivity(s.executor.MintIdentityToken, mock.Anything).
		Return(&identity.MintedIdentity{TokenID: s.token.TokenID, TxHash: common.HexToHash("0x01")}, nil).Once()
	s.env.OnActivity(s.executor.ReadIdentityPublicKey, mock.Anything, "0x1234").
		Return([]byte(nil), errors.New("header not found")).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, s.pendingProgress())

	_, progress := s.provisioningFailure()
	s.Equal(domain.ProvisioningStateConnected, progress.State)
	s.Equal(domain.ProvisioningStateMinted, progress.FailedStep)
	s.Contains(progress.Error, "header not found")
	s.Equal("0x1234", progress.TokenID)
	s.Empty(progress.PublicKey)
	s.Equal(common.HexToHash("0x01").Hex(), progress.TxHashes[string(domain.ProvisioningStateMinted)])

	// the failure record carries the minted token id
	s.Require().Len(s.recorded, 2)
	s.Equal("0x1234", s.recorded[1].TokenID)
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_ResumeAfterPublicKeyReadDoesNotMintAgain() {
	progress := s.pendingProgress()
	progress.State = domain.ProvisioningStateConnected
	progress.RecordTokenID(s.token.TokenID)
	progress.RecordTx(domain.ProvisioningStateMinted, common.HexToHash("0x01"))
	progress.FailedStep = domain.ProvisioningStateMinted
	progress.Error = "header not found"

	// no MintIdentityToken expectation: a second mint fails the mock controller
	s.env.OnActivity(s.executor.ReadIdentityPublicKey, mock.Anything, "0x1234").
		Return(s.token.PublicKey, nil).Once()
	s.env.OnActivity(s.executor.PermitAuthMethod, mock.Anything, "0x1234", "123456").
		Return(common.HexToHash("0x02"), nil).Once()
	s.env.OnActivity(s.executor.PermitProgram, mock.Anything, "0x1234").
		Return(common.HexToHash("0x03"), nil).Once()
	s.env.OnActivity(s.executor.TransferIdentityToSelf, mock.Anything, mock.MatchedBy(func(t domain.IdentityToken) bool {
		return t.TokenID.Cmp(s.token.TokenID) == 0
	})).Return(common.HexToHash("0x04"), nil).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, progress)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var token domain.IdentityToken
	s.NoError(s.env.GetWorkflowResult(&token))
	s.Equal(0, token.TokenID.Cmp(s.token.TokenID))
	s.Equal(s.token.PublicKey, token.PublicKey)

	s.Require().Len(s.recorded, 4)
	final := s.recorded[3]
	s.True(final.Completed())
	s.Equal(common.HexToHash("0x01").Hex(), final.TxHashes[string(domain.ProvisioningStateMinted)])
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_ResumeSkipsMint() {
	progress := s.pendingProgress()
	progress.State = domain.ProvisioningStateMinted
	progress.RecordToken(&s.token)
	progress.RecordTx(domain.ProvisioningStateMinted, common.HexToHash("0x01"))
	progress.FailedStep = domain.ProvisioningStateAuthPermitted
	progress.Error = "execution reverted"

	s.env.OnActivity(s.executor.PermitAuthMethod, mock.Anything, "0x1234", "123456").
		Return(common.HexToHash("0x02"), nil).Once()
	s.env.OnActivity(s.executor.PermitProgram, mock.Anything, "0x1234").
		Return(common.HexToHash("0x03"), nil).Once()
	s.env.OnActivity(s.executor.TransferIdentityToSelf, mock.Anything, mock.Anything).
		Return(common.HexToHash("0x04"), nil).Once()
	s.recordProgress()

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, progress)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Require().Len(s.recorded, 3)
	for _, p := range s.recorded {
		s.False(p.Failed())
	}
	final := s.recorded[2]
	s.True(final.Completed())
	s.Len(final.TxHashes, 4)
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_RecordFailureStopsRun() {
	s.env.OnActivity(s.executor.ConnectNodeNetwork, mock.Anything).Return(nil).Once()
	s.env.OnActivity(s.executor.RecordProvisioningProgress, mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, s.pendingProgress())

	_, progress := s.provisioningFailure()
	s.Equal(domain.ProvisioningStateConnected, progress.State)
	s.Equal(domain.ProvisioningStateMinted, progress.FailedStep)
	s.Contains(progress.Error, "failed to record progress")
}

func (s *ProvisionIdentityTestSuite) TestProvisionIdentity_UnknownState() {
	progress := s.pendingProgress()
	progress.State = "halfway"

	s.env.ExecuteWorkflow(s.workerCore.ProvisionIdentity, progress)

	appErr, _ := s.provisioningFailure()
	s.Contains(appErr.Error(), "halfway")
}
