package domain

const (
	// AuthMethodTypeTelegram is the custom auth method type registered for Telegram users (0x15f85)
	AuthMethodTypeTelegram = 89989

	// AuthMethodScopeSignAnything grants an auth method or program permission to sign arbitrary payloads
	AuthMethodScopeSignAnything = 1

	// KeyTypeECDSA is the key type requested when minting an identity token
	KeyTypeECDSA = 2

	// DefaultLitActionCID is the IPFS CID of the program permitted on every minted identity
	DefaultLitActionCID = "QmNwLV5GdY8GPsiJ7cxErbSTmKVFAusTZp2ywRwszLN4cS"

	// DefaultCreditRequestsPerKilosecond is the throughput bought for every minted capacity credit
	DefaultCreditRequestsPerKilosecond = 150

	// DefaultCreditDaysUntilExpiry is the minimum lifetime of a minted capacity credit
	DefaultCreditDaysUntilExpiry = 15

	// DefaultPayerFundingAmount is the native amount sent from the treasury to a new payer wallet
	DefaultPayerFundingAmount = "0.001"

	// ZeroAddress is the zero account address
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// Contract names as published by the Lit networks
	ContractPKPNFT            = "PKPNFT"
	ContractPKPPermissions    = "PKPPermissions"
	ContractRateLimitNFT      = "RateLimitNFT"
	ContractPaymentDelegation = "PaymentDelegation"
)
