// Package response содержит канонические JSON-тела ответов API.
//
// Успешный ответ имеет форму {"response": <результат>, "code": 200},
// ответ с ошибкой — {"error": <описание>, "code": <статус>}, где описание
// может быть строкой либо словарем ошибок по полям.
package response

import "net/http"

// Success тело успешного ответа.
type Success struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

// Failure тело ответа с ошибкой.
type Failure struct {
	Error any `json:"error"`
	Code  int `json:"code"`
}

// OK возвращает Success с переданным результатом.
func OK(data any) Success {
	return Success{Response: data, Code: http.StatusOK}
}

// Error возвращает Failure с переданным статусом и описанием.
func Error(code int, err any) Failure {
	return Failure{Error: err, Code: code}
}
