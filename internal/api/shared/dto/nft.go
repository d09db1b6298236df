package dto

// NFTMetadata is the static metadata document served for a collectible
type NFTMetadata struct {
	Schema      string `json:"schema"`
	NFTType     string `json:"nftType"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
