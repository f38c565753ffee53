// Package auth реализует проверку токена запроса.
//
// Ожидаемый токен выводится из полей идентификации запроса: для обычного
// пользователя — из account и login с общей солью, для администратора —
// из текущего часа с административной солью, то есть админский токен
// действителен в пределах одного часа и меняется на границе часа.
package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/magabrotheeeer/scoring-api/internal/requests"
)

const (
	// Salt общая соль для пользовательских токенов
	Salt = "Otus"
	// AdminSalt соль для административных токенов
	AdminSalt = "42"
	// adminTokenLayout усечение времени до часа
	adminTokenLayout = "2006010215"
)

// UserToken возвращает ожидаемый токен для пары account/login.
func UserToken(account, login string) string {
	return digest(account + login + Salt)
}

// AdminToken возвращает ожидаемый административный токен для часа,
// в который попадает now.
func AdminToken(now time.Time) string {
	return digest(now.Format(adminTokenLayout) + AdminSalt)
}

// Check сравнивает предъявленный токен с ожидаемым.
// Сравнение выполняется за постоянное время.
func Check(req *requests.MethodRequest) bool {
	expected := UserToken(req.Account(), req.Login())
	if req.IsAdmin() {
		expected = AdminToken(time.Now())
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Token())) == 1
}

func digest(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
