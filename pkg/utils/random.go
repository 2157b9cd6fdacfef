package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed детерминированно сворачивает строку в сид для math/rand.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
