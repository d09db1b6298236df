package domain

import "errors"

var (
	// ErrUnsupportedNetwork is returned when a network is unknown or excluded by policy for an operation
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrContractNotFound is returned when a contract name is not published for a network
	ErrContractNotFound = errors.New("contract not found")

	// ErrInvalidAddress is returned when a payee string is not a valid account address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidTokenID is returned when a token id is neither decimal nor 0x-prefixed hex
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrInvalidPrivateKey is returned when a supplied wallet key cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrAuthentication is returned when Telegram init data fails verification
	ErrAuthentication = errors.New("authentication failed")

	// ErrPermissionDenied is returned when a user is not a permitted auth method on an identity
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTransactionFailed is returned when a submitted transaction produces no successful receipt
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrMintFailed is returned when a capacity credit could not be minted
	ErrMintFailed = errors.New("failed to mint capacity credits")

	// ErrProvisioningFailed is returned when an identity provisioning run stops before custody transfer
	ErrProvisioningFailed = errors.New("identity provisioning failed")

	// ErrProvisioningNotFound is returned when a provisioning record does not exist for the caller
	ErrProvisioningNotFound = errors.New("provisioning not found")

	// ErrProvisioningComplete is returned when resuming a provisioning run that already finished
	ErrProvisioningComplete = errors.New("provisioning already complete")
)
