package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	nanoidSize     = 32
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID returns a fresh url-safe random identifier, used for blob storage
// keys so uploads never collide regardless of filename.
func NanoID() string {
	return gonanoid.MustGenerate(nanoidAlphabet, nanoidSize)
}
