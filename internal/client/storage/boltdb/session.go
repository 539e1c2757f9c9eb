package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/assembleally/client/internal/client/storage"
	"github.com/assembleally/client/internal/models"
)

// Ключи сессии в bucket; три независимые записи,
// как в localStorage исходного веб-клиента
var (
	keyAccessToken  = []byte("access_token")
	keyRefreshToken = []byte("refresh_token")
	keyUser         = []byte("user")
)

// SetSession записывает присутствующие поля, не трогая остальные
func (s *Storage) SetSession(ctx context.Context, update storage.SessionUpdate) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if update.AccessToken != nil {
			if err := bucket.Put(keyAccessToken, []byte(*update.AccessToken)); err != nil {
				return fmt.Errorf("failed to save access token: %w", err)
			}
		}

		if update.RefreshToken != nil {
			if err := bucket.Put(keyRefreshToken, []byte(*update.RefreshToken)); err != nil {
				return fmt.Errorf("failed to save refresh token: %w", err)
			}
		}

		if update.User != nil {
			data, err := json.Marshal(update.User)
			if err != nil {
				return fmt.Errorf("failed to marshal user: %w", err)
			}
			if err := bucket.Put(keyUser, data); err != nil {
				return fmt.Errorf("failed to save user: %w", err)
			}
		}

		return nil
	})
}

// AccessToken возвращает сохраненный access token, "" если его нет
func (s *Storage) AccessToken(ctx context.Context) (string, error) {
	return s.getString(keyAccessToken)
}

// RefreshToken возвращает сохраненный refresh token, "" если его нет
func (s *Storage) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(keyRefreshToken)
}

// CachedUser возвращает сохраненный снимок профиля, nil если снимка нет
func (s *Storage) CachedUser(ctx context.Context) (*models.Profile, error) {
	var user *models.Profile

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyUser)
		if data == nil {
			return nil
		}

		user = &models.Profile{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// IsAuthenticated проверяет только наличие access token
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Clear удаляет все поля сессии; повторный вызов не ошибка
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		for _, key := range [][]byte{keyAccessToken, keyRefreshToken, keyUser} {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}

		return nil
	})
}

// getString читает строковое значение по ключу, "" если ключа нет
func (s *Storage) getString(key []byte) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Копируем значение: данные bbolt валидны только внутри транзакции
		value = string(bucket.Get(key))
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}
