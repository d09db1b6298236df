package adapter

import "encoding/base64"

// Base64 defines an interface for Base64 operations to enable mocking
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=Base64=MockBase64
type Base64 interface {
	Encode(data []byte) string
	Decode(data string) ([]byte, error)
	// EncodeURL encodes with the unpadded URL-safe alphabet
	EncodeURL(data []byte) string
}

type RealBase64 struct{}

func NewBase64() Base64 {
	return &RealBase64{}
}

func (b *RealBase64) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *RealBase64) Decode(data string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(data)
}

func (b *RealBase64) EncodeURL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}
