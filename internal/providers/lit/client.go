package lit

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
)

const (
	// DerivedViaPersonalSign marks an auth sig produced by an EIP-191 personal signature
	DerivedViaPersonalSign = "web3.eth.personal.sign"

	delegationURI         = "lit:capability:delegation"
	rateLimitResourceBase = "lit-ratelimitincrease://"
	recapURNPrefix        = "urn:recap:"
	recapAbility          = "Auth/Auth"
	siweChainID           = 1
	isoMillis             = "2006-01-02T15:04:05.000Z"
)

// NodeClient talks to the Lit node network on behalf of the relay
//
//go:generate mockgen -source=client.go -destination=../../mocks/lit_client.go -package=mocks -mock_names=NodeClient=MockNodeClient
type NodeClient interface {
	// Connect establishes a session; it fails when the network is unreachable
	Connect(ctx context.Context) (*Session, error)

	// CreateCapacityDelegationAuthSig lets delegatees spend the owner's capacity credits
	CreateCapacityDelegationAuthSig(ctx context.Context, session *Session, req DelegationRequest) (*AuthSig, error)
}

// Session is a connection to the node network
type Session struct {
	Network         domain.Network
	LatestBlockhash string
	ConnectedAt     time.Time
}

// DelegationRequest describes a capacity delegation
type DelegationRequest struct {
	Owner      *ethereum.Signer
	Delegatees []common.Address
	// CapacityTokenID restricts the delegation to one credit; nil delegates any credit of the owner
	CapacityTokenID *big.Int
	// Uses caps how many requests delegatees may make; zero leaves it uncapped
	Uses uint64
}

// AuthSig is a signed capability message accepted by the node network
type AuthSig struct {
	Sig           string `json:"sig"`
	DerivedVia    string `json:"derivedVia"`
	SignedMessage string `json:"signedMessage"`
	Address       string `json:"address"`
}

// Config holds node client settings
type Config struct {
	Network       domain.Network
	Domain        string
	DelegationTTL time.Duration
}

type nodeClient struct {
	config Config
	chain  ethereum.ChainClient
	clock  adapter.Clock
	json   adapter.JSON
	base64 adapter.Base64
}

// NewNodeClient creates a node client. Session nonces come from the chain head.
func NewNodeClient(config Config, chain ethereum.ChainClient, clock adapter.Clock, json adapter.JSON, base64 adapter.Base64) NodeClient {
	if config.Domain == "" {
		config.Domain = "localhost"
	}
	if config.DelegationTTL <= 0 {
		config.DelegationTTL = 24 * time.Hour
	}
	return &nodeClient{config: config, chain: chain, clock: clock, json: json, base64: base64}
}

// Connect establishes a session
func (c *nodeClient) Connect(ctx context.Context) (*Session, error) {
	hash, err := c.chain.LatestBlockHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.config.Network, err)
	}

	session := &Session{
		Network:         c.config.Network,
		LatestBlockhash: hash.Hex(),
		ConnectedAt:     c.clock.Now(),
	}
	logger.InfoCtx(ctx, "Connected to node network",
		zap.String("network", string(c.config.Network)),
		zap.String("blockhash", session.LatestBlockhash))

	return session, nil
}

// CreateCapacityDelegationAuthSig signs a SIWE message carrying a ReCap for the rate limit resource
func (c *nodeClient) CreateCapacityDelegationAuthSig(ctx context.Context, session *Session, req DelegationRequest) (*AuthSig, error) {
	if session == nil {
		return nil, fmt.Errorf("node client is not connected")
	}
	if req.Owner == nil {
		return nil, fmt.Errorf("delegation owner is required")
	}

	resource := rateLimitResourceBase + "*"
	if req.CapacityTokenID != nil {
		resource = rateLimitResourceBase + req.CapacityTokenID.String()
	}

	recap, err := c.encodeRecap(resource, req)
	if err != nil {
		return nil, err
	}

	issuedAt := c.clock.Now().UTC()
	message := buildSIWEMessage(siweMessage{
		Domain:         c.config.Domain,
		Address:        req.Owner.Address().Hex(),
		Statement:      fmt.Sprintf("I further authorize the stated URI to perform the following actions on my behalf: (1) 'Auth': 'Auth' for '%s'.", resource),
		URI:            delegationURI,
		Nonce:          session.LatestBlockhash,
		IssuedAt:       issuedAt.Format(isoMillis),
		ExpirationTime: issuedAt.Add(c.config.DelegationTTL).Format(isoMillis),
		Resources:      []string{recap},
	})

	sig, err := req.Owner.SignPersonalMessage([]byte(message))
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Created capacity delegation auth sig",
		zap.String("owner", req.Owner.Address().Hex()),
		zap.Int("delegatees", len(req.Delegatees)),
		zap.String("resource", resource))

	return &AuthSig{
		Sig:           hexutil.Encode(sig),
		DerivedVia:    DerivedViaPersonalSign,
		SignedMessage: message,
		Address:       req.Owner.Address().Hex(),
	}, nil
}

func (c *nodeClient) encodeRecap(resource string, req DelegationRequest) (string, error) {
	delegateTo := make([]string, 0, len(req.Delegatees))
	for _, d := range req.Delegatees {
		delegateTo = append(delegateTo, strings.TrimPrefix(d.Hex(), "0x"))
	}

	restriction := map[string]interface{}{
		"delegate_to": delegateTo,
	}
	if req.CapacityTokenID != nil {
		restriction["nft_id"] = []string{req.CapacityTokenID.String()}
	}
	if req.Uses > 0 {
		restriction["uses"] = fmt.Sprintf("%d", req.Uses)
	}

	payload, err := c.json.Marshal(map[string]interface{}{
		"att": map[string]interface{}{
			resource: map[string]interface{}{
				recapAbility: []interface{}{restriction},
			},
		},
		"prf": []string{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode recap: %w", err)
	}

	return recapURNPrefix + c.base64.EncodeURL(payload), nil
}

type siweMessage struct {
	Domain         string
	Address        string
	Statement      string
	URI            string
	Nonce          string
	IssuedAt       string
	ExpirationTime string
	Resources      []string
}

// buildSIWEMessage renders an EIP-4361 message
func buildSIWEMessage(m siweMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your Ethereum account:\n%s\n\n", m.Domain, m.Address)
	if m.Statement != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Statement)
	}
	fmt.Fprintf(&b, "URI: %s\nVersion: 1\nChain ID: %d\nNonce: %s\nIssued At: %s", m.URI, siweChainID, m.Nonce, m.IssuedAt)
	if m.ExpirationTime != "" {
		fmt.Fprintf(&b, "\nExpiration Time: %s", m.ExpirationTime)
	}
	if len(m.Resources) > 0 {
		b.WriteString("\nResources:")
		for _, r := range m.Resources {
			fmt.Fprintf(&b, "\n- %s", r)
		}
	}
	return b.String()
}
