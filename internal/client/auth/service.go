package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/client/storage"
	"github.com/assembleally/client/internal/models"
	pkgapi "github.com/assembleally/client/pkg/api"
)

// ErrInvalidCredentials возвращается, когда сервер отклонил логин/пароль
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNoAccessToken возвращается, когда успешный ответ сервера
// не содержит access token
var ErrNoAccessToken = errors.New("server response contained no access token")

// Service координирует вход в систему: обмен учетных данных на токены,
// сохранение сессии и загрузку профиля.
// Токены сохраняются сразу после обмена; сбой последующей загрузки
// профиля не отменяет уже установленную сессию.
type Service struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, sessions storage.SessionStorage) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// Result содержит итог входа. User равен nil, если профиль загрузить
// не удалось; ProfileErr тогда описывает причину. Сессия в обоих
// случаях установлена.
type Result struct {
	User       *models.Profile
	ProfileErr error
}

// Login выполняет вход по имени пользователя и паролю
func (s *Service) Login(ctx context.Context, username, password string) (*Result, error) {
	creds := pkgapi.Credentials{Username: username, Password: password}
	if err := pkgapi.Validate(creds); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, creds)
	if err != nil {
		// 401 на /token/ означает неверные учетные данные,
		// а не истекшую сессию
		if errors.Is(err, api.ErrSessionExpired) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.establishSession(ctx, resp)
}

// Register регистрирует нового пользователя и сразу устанавливает сессию:
// сервер возвращает токены вместе с созданным пользователем
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*Result, error) {
	if err := pkgapi.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, resp)
}

// establishSession сохраняет токены и загружает профиль.
// Порядок важен: сессия валидна с момента записи токенов,
// профиль — необязательное дополнение.
func (s *Service) establishSession(ctx context.Context, resp *pkgapi.TokenResponse) (*Result, error) {
	if resp.Access == "" {
		return nil, ErrNoAccessToken
	}

	update := storage.SessionUpdate{AccessToken: &resp.Access}
	if resp.Refresh != "" {
		update.RefreshToken = &resp.Refresh
	}
	if resp.User != nil {
		update.User = resp.User
	}

	if err := s.sessions.SetSession(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if resp.User != nil {
		return &Result{User: resp.User}, nil
	}

	// Ответ логина не содержит пользователя: дозагружаем профиль
	user, profileErr := s.fetchProfile(ctx)
	return &Result{User: user, ProfileErr: profileErr}, nil
}

// fetchProfile загружает профиль и кладет снимок в сессию
func (s *Service) fetchProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.apiClient.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.sessions.SetSession(ctx, storage.SessionUpdate{User: profile}); err != nil {
		return profile, fmt.Errorf("failed to cache profile: %w", err)
	}

	return profile, nil
}

// RefreshProfile перечитывает профиль с сервера и обновляет снимок в сессии
func (s *Service) RefreshProfile(ctx context.Context) (*models.Profile, error) {
	return s.fetchProfile(ctx)
}

// Logout удаляет локальную сессию. Идемпотентен.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Status возвращает признак аутентификации и кешированный профиль
// без похода в сеть
func (s *Service) Status(ctx context.Context) (bool, *models.Profile, error) {
	authenticated, err := s.sessions.IsAuthenticated(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authenticated {
		return false, nil, nil
	}

	user, err := s.sessions.CachedUser(ctx)
	if err != nil {
		return true, nil, fmt.Errorf("failed to read cached user: %w", err)
	}
	return true, user, nil
}
