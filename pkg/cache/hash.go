package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKey builds the cache key for a layout computation: the hash of the
// serialized input graph plus the algorithm and every option that affects
// placement.
func LayoutKey(graphHash, algorithm string, opts any) string {
	return hashKey("layout", graphHash, algorithm, opts)
}

// GraphKey builds the cache key for an imported graph, keyed by the source
// content hash.
func GraphKey(sourceHash string) string {
	return hashKey("graph", sourceHash)
}
