package common

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// MakeRandHexString generates size random bytes and returns them hex-encoded,
// so the resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateRandByteArray returns n cryptographically random bytes.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// ChannelKey builds the push channel name for one table of one ledger.
func ChannelKey(table, ledgerID string) string {
	return table + ChannelSeparator + ledgerID
}

// ParseChannelKey splits a channel name produced by ChannelKey.
func ParseChannelKey(key string) (table, ledgerID string, ok bool) {
	table, ledgerID, ok = strings.Cut(key, ChannelSeparator)
	if !ok || table == "" || ledgerID == "" {
		return "", "", false
	}
	return table, ledgerID, true
}
