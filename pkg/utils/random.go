package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает простой уникальный ID для подключившегося клиента
// (замена UUID для снижения зависимостей). Не имеет отношения к
// детерминированным генераторам симуляции — это чисто сессионный идентификатор.
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
