package storage

import (
	"context"

	"github.com/assembleally/client/internal/models"
)

// SessionStorage defines interface for the locally persisted session.
// Хранилище держит три независимых поля: access token, refresh token
// и снимок профиля пользователя. Содержимое токенов не проверяется,
// это непрозрачные строки сервера.
type SessionStorage interface {
	// SetSession записывает присутствующие в update поля.
	// Nil-поле не трогает ранее сохраненное значение.
	SetSession(ctx context.Context, update SessionUpdate) error

	// AccessToken возвращает сохраненный access token, "" если его нет
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken возвращает сохраненный refresh token, "" если его нет
	RefreshToken(ctx context.Context) (string, error)

	// CachedUser возвращает последний сохраненный снимок профиля
	// без похода в сеть, nil если снимка нет
	CachedUser(ctx context.Context) (*models.Profile, error)

	// IsAuthenticated возвращает true тогда и только тогда, когда
	// сохранен access token. Срок действия и подпись не проверяются.
	IsAuthenticated(ctx context.Context) (bool, error)

	// Clear удаляет все три поля сессии. Идемпотентна.
	Clear(ctx context.Context) error
}

// SessionUpdate перечисляет поля сессии для записи
type SessionUpdate struct {
	AccessToken  *string
	RefreshToken *string
	User         *models.Profile
}
