package constants

import "github.com/yhl125/iampocket-relay-server/internal/api/shared/dto"

const (
	SERVICE_NAME = "iampocket-relay-server"

	// NFT_SCHEMA_BASE_URL prefixes the schema link of every served NFT document
	NFT_SCHEMA_BASE_URL = "https://iampocket-relay-server.vercel.app/nft/"
	NFT_TYPE_ART        = "art.v0"
)

// NFT_METADATA lists the collectibles served under /nft/:name
var NFT_METADATA = map[string]dto.NFTMetadata{
	"maru": {
		Schema:      NFT_SCHEMA_BASE_URL + "maru",
		NFTType:     NFT_TYPE_ART,
		Name:        "maru",
		Description: "maru cute",
		Image:       "ipfs://QmbqPdhA4LjnEXECnafJmxwMHwKu2Sd3tq6khRDPP52W2H",
	},
	"maru-sleeping": {
		Schema:      NFT_SCHEMA_BASE_URL + "maru-sleeping",
		NFTType:     NFT_TYPE_ART,
		Name:        "maru-sleeping",
		Description: "maru coolcool",
		Image:       "ipfs://QmXtJ7RZEkCKMuEB3vyswwdWNzP1iJsrqboqT1pEaYLCuL",
	},
	"maru-glasses": {
		Schema:      NFT_SCHEMA_BASE_URL + "maru-glasses",
		NFTType:     NFT_TYPE_ART,
		Name:        "maru-glasses",
		Description: "maru ganzi",
		Image:       "ipfs://QmaqB7xUdqFdu6cVsiMiFZPH433YjaigXPtDEx3zQ6Zoyt",
	},
}
