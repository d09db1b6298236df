package workflows

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
)

// ProvisionIdentity drives an identity from its recorded state to custody transfer:
//
//	pending -> connected -> minted -> auth_permitted -> program_permitted -> transferred
//
// Steps already reached are skipped, so a failed run can be resumed without minting twice.
// On-chain steps are never retried; a failing step stops the run with a ProvisioningFailed
// application error carrying the progress.
func (w *workerCore) ProvisionIdentity(ctx workflow.Context, progress domain.ProvisioningProgress) (*domain.IdentityToken, error) {
	if !progress.State.Valid() {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown provisioning state %q", progress.State), ProvisioningFailedErrorType, nil, progress)
	}

	progress.FailedStep = ""
	progress.Error = ""

	err := workflow.SetQueryHandler(ctx, ProvisioningProgressQuery, func() (domain.ProvisioningProgress, error) {
		return progress, nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoWf(ctx, "Starting identity provisioning",
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("state", string(progress.State)))

	stepCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.config.StepTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
	recordCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: time.Second,
		},
	})

	for !progress.Completed() {
		step := progress.State.Next()

		if err := w.runStep(stepCtx, step, &progress); err != nil {
			return nil, w.fail(recordCtx, progress, step, err)
		}
		progress.State = step

		logger.InfoWf(ctx, "Provisioning step completed",
			zap.String("provisioningID", progress.ProvisioningID),
			zap.String("state", string(step)))

		if err := workflow.ExecuteActivity(recordCtx, w.executor.RecordProvisioningProgress, progress).Get(recordCtx, nil); err != nil {
			if progress.Completed() {
				// custody is transferred, the caller stores the final state
				logger.WarnWf(ctx, "Failed to record completed provisioning",
					zap.String("provisioningID", progress.ProvisioningID),
					zap.Error(err))
				break
			}
			return nil, w.fail(recordCtx, progress, step.Next(), fmt.Errorf("failed to record progress: %s", failureMessage(err)))
		}
	}

	token, err := progress.IdentityToken()
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ProvisioningFailedErrorType, err, progress)
	}

	logger.InfoWf(ctx, "Identity provisioning completed",
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("tokenID", progress.TokenID))

	return token, nil
}

func (w *workerCore) runStep(ctx workflow.Context, step domain.ProvisioningState, progress *domain.ProvisioningProgress) error {
	switch step {
	case domain.ProvisioningStateConnected:
		return workflow.ExecuteActivity(ctx, w.executor.ConnectNodeNetwork).Get(ctx, nil)

	case domain.ProvisioningStateMinted:
		// a token id recorded by an earlier run is never minted again
		if progress.TokenID == "" {
			var minted identity.MintedIdentity
			if err := workflow.ExecuteActivity(ctx, w.executor.MintIdentityToken).Get(ctx, &minted); err != nil {
				return err
			}
			progress.RecordTokenID(minted.TokenID)
			progress.RecordTx(step, minted.TxHash)
		}

		var pubkey []byte
		if err := workflow.ExecuteActivity(ctx, w.executor.ReadIdentityPublicKey, progress.TokenID).Get(ctx, &pubkey); err != nil {
			return err
		}
		progress.PublicKey = hexutil.Encode(pubkey)
		return nil

	case domain.ProvisioningStateAuthPermitted:
		var hash common.Hash
		if err := workflow.ExecuteActivity(ctx, w.executor.PermitAuthMethod, progress.TokenID, progress.TelegramUserID).Get(ctx, &hash); err != nil {
			return err
		}
		progress.RecordTx(step, hash)
		return nil

	case domain.ProvisioningStateProgramPermitted:
		var hash common.Hash
		if err := workflow.ExecuteActivity(ctx, w.executor.PermitProgram, progress.TokenID).Get(ctx, &hash); err != nil {
			return err
		}
		progress.RecordTx(step, hash)
		return nil

	case domain.ProvisioningStateTransferred:
		token, err := progress.IdentityToken()
		if err != nil {
			return err
		}
		if token == nil {
			return fmt.Errorf("no identity token recorded before transfer")
		}
		var hash common.Hash
		if err := workflow.ExecuteActivity(ctx, w.executor.TransferIdentityToSelf, *token).Get(ctx, &hash); err != nil {
			return err
		}
		progress.RecordTx(step, hash)
		return nil
	}

	return fmt.Errorf("no step leads to state %q", step)
}

// fail records where the run stopped and builds the error returned to the caller
func (w *workerCore) fail(recordCtx workflow.Context, progress domain.ProvisioningProgress, step domain.ProvisioningState, cause error) error {
	progress.FailedStep = step
	progress.Error = failureMessage(cause)

	logger.ErrorWf(recordCtx, fmt.Errorf("identity provisioning failed at %s: %w", step, cause),
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("state", string(progress.State)))

	if err := workflow.ExecuteActivity(recordCtx, w.executor.RecordProvisioningProgress, progress).Get(recordCtx, nil); err != nil {
		logger.WarnWf(recordCtx, "Failed to record provisioning failure",
			zap.String("provisioningID", progress.ProvisioningID),
			zap.Error(err))
	}

	return temporal.NewNonRetryableApplicationError(
		fmt.Sprintf("identity provisioning failed at %s: %s", step, progress.Error),
		ProvisioningFailedErrorType,
		cause,
		progress,
	)
}

// failureMessage unwraps activity errors down to the message the activity returned
func failureMessage(err error) string {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
