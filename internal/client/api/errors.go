package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Сигнальные ошибки для ветвления через errors.Is
var (
	// ErrSessionExpired возвращается на любой ответ 401.
	// К этому моменту клиент уже очистил сессию и дернул onSessionExpired.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound — сервер не нашел запрошенную сущность
	ErrNotFound = errors.New("not found")

	// ErrForbidden — действие вне прав текущего пользователя;
	// сессия при этом остается валидной
	ErrForbidden = errors.New("forbidden")
)

// ValidationError представляет ошибки валидации по полям,
// как их возвращает сервер: map имя поля -> список сообщений
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// TransportError означает, что ответ от сервера не получен вовсе
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request did not reach server: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError представляет ошибку сервера с кодом и текстом detail
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Detail)
}

// Is сопоставляет коды состояния с сигнальными ошибками,
// чтобы вызывающий код мог писать errors.Is(err, ErrNotFound)
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}
