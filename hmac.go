package vexlcrypto

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
)

// HMACSign returns the base64 HMAC-SHA256 of data keyed with password.
func HMACSign(data, password string) string {
	return crypto.ToBase64(hmacSum(data, password))
}

// HMACVerify reports whether mac is the HMAC of data under password. The
// comparison is constant time.
func HMACVerify(data, password, mac string) bool {
	expected, err := crypto.DecodeBase64(mac)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, hmacSum(data, password))
}

func hmacSum(data, password string) []byte {
	m := hmac.New(sha256.New, []byte(password))
	m.Write([]byte(data))
	return m.Sum(nil)
}
