package gotrans

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheNamespace identifies a provider and its language pair inside a shared cache.
func CacheNamespace(id ProviderID, sourceLang, targetLang string) string {
	return string(id) + ":" + sourceLang + ":" + targetLang
}

// CacheKey generates a cache key from a text hash and a cache namespace.
func CacheKey(hash, namespace string) string {
	return namespace + ":" + hash
}
