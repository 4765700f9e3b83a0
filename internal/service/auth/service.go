package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// Session выданная сессия администратора
type Session struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

// Service аутентификация администратора и управление паролем
type Service struct {
	store        CredentialStore
	secret       []byte
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(store CredentialStore, secret string, logger Logger) *Service {
	return &Service{
		store:        store,
		secret:       []byte(secret),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Authenticate проверяет логин и пароль и выдает токен сессии.
// Срок жизни токена берётся из настройки sessionTimeout.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	creds, err := s.store.Credentials(ctx)
	if err != nil {
		s.logger.Error("Authenticate: failed to load credentials: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - credentials: %v", ErrInternal, err)
	}

	if username != creds.Username || !CheckPassword(creds.PasswordHash, password) {
		s.logger.Warn("Authenticate: rejected login for username=%q", username)
		return nil, ErrInvalidCredentials
	}

	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		s.logger.Error("Authenticate: failed to load preferences: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - preferences: %v", ErrInternal, err)
	}

	timeout := prefs.SessionTimeoutMinutes
	if timeout <= 0 {
		timeout = domain.DefaultSessionTimeoutMinutes
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(time.Duration(timeout) * time.Minute)

	token, err := signToken(s.secret, username, now, expiresAt)
	if err != nil {
		s.logger.Error("Authenticate: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - sign: %v", ErrInternal, err)
	}

	s.logger.Info("Authenticate: session issued for %q until %s", username, expiresAt.Format(time.RFC3339))
	return &Session{Username: username, Token: token, ExpiresAt: time.Unix(expiresAt.Unix(), 0)}, nil
}

// ValidateToken проверяет подпись и срок действия токена, возвращает имя пользователя
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return "", err
	}

	if !claims.VerifyExpiresAt(s.timeProvider.Now().Unix(), true) {
		return "", ErrTokenExpired
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// ChangePassword меняет пароль. Текущий пароль должен совпасть, новый не
// короче MinPasswordLength символов и совпадать с подтверждением.
func (s *Service) ChangePassword(ctx context.Context, current, next, confirm string) error {
	creds, err := s.store.Credentials(ctx)
	if err != nil {
		s.logger.Error("ChangePassword: failed to load credentials: %v", err)
		return fmt.Errorf("%w: ChangePassword - credentials: %v", ErrInternal, err)
	}

	verr := &domain.ValidationError{}
	if !CheckPassword(creds.PasswordHash, current) {
		verr.Add("currentPassword", "does not match")
	}
	if len(next) < domain.MinPasswordLength {
		verr.Add("newPassword", fmt.Sprintf("must be at least %d characters", domain.MinPasswordLength))
	}
	if next != confirm {
		verr.Add("confirmPassword", "does not match the new password")
	}
	if err := verr.Err(); err != nil {
		s.logger.Warn("ChangePassword: rejected: %v", err)
		return err
	}

	hash, err := HashPassword(next)
	if err != nil {
		s.logger.Error("ChangePassword: %v", err)
		return err
	}

	creds.PasswordHash = hash
	if err := s.store.UpdateCredentials(ctx, creds); err != nil {
		s.logger.Error("ChangePassword: failed to persist credentials: %v", err)
		return fmt.Errorf("%w: ChangePassword - persist: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password changed for %q", creds.Username)
	return nil
}
