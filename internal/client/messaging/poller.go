package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/models"
)

// DefaultInterval — период опроса переписки
const DefaultInterval = 10 * time.Second

// Poller периодически перечитывает переписку с одним пользователем.
// Каждый успешный опрос целиком замещает локальный список: подписчик
// получает авторитативный снимок, слияния на клиенте нет.
type Poller struct {
	apiClient *api.Client
	interval  time.Duration
	logger    zerolog.Logger
}

// NewPoller создает poller с заданным периодом опроса
func NewPoller(apiClient *api.Client, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		apiClient: apiClient,
		interval:  interval,
		logger:    logger,
	}
}

// Watch загружает переписку сразу, затем перечитывает ее каждый период.
// onUpdate вызывается на каждый успешный опрос с полным списком сообщений.
// Ошибки отдельных опросов логируются и не останавливают цикл;
// исключение — истекшая сессия, дальше опрашивать бессмысленно.
// Возвращается при отмене ctx с ctx.Err().
func (p *Poller) Watch(ctx context.Context, userID int64, onUpdate func([]models.Message)) error {
	if err := p.poll(ctx, userID, onUpdate); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			return err
		}
		p.logger.Warn().Err(err).Int64("user_id", userID).Msg("message poll failed")
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.poll(ctx, userID, onUpdate); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if errors.Is(err, api.ErrSessionExpired) {
					return err
				}
				p.logger.Warn().Err(err).Int64("user_id", userID).Msg("message poll failed")
			}
		}
	}
}

// poll выполняет один опрос и отдает снимок подписчику
func (p *Poller) poll(ctx context.Context, userID int64, onUpdate func([]models.Message)) error {
	messages, err := p.apiClient.MessagesWith(ctx, userID)
	if err != nil {
		return err
	}
	onUpdate(messages)
	return nil
}
