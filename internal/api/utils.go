package api

import (
	"crypto/rand"
	"encoding/base64"
)

func generateRandomString(length int) string {
	// base64 encoding grows input by ~4/3, so fewer input bytes suffice
	byteLength := (length * 3) / 4
	if byteLength < length {
		byteLength = length
	}

	b := make([]byte, byteLength)
	rand.Read(b)
	encoded := base64.URLEncoding.EncodeToString(b)
	if len(encoded) > length {
		return encoded[:length]
	}
	return encoded
}
