package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/credential"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt limiter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, name, role string) (bool, error)
	RecordFailure(ctx context.Context, name, role string) error
	Reset(ctx context.Context, name, role string) error
}

// AuthService implements login with transparent credential migration.
type AuthService struct {
	users     ports.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 60 * time.Minute
	}
	return &AuthService{users: users, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login authenticates a (name, role, password) triple and returns a signed
// bearer token. Every failure path returns domain.ErrInvalidCredentials: the
// response never reveals whether the (name, role) pair exists.
func (s *AuthService) Login(ctx context.Context, name, role, password string) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" || !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.TooManyFailures(ctx, name, role)
		if err != nil {
			s.log.Warn().Err(err).Str("name", name).Msg("throttle check failed, proceeding")
		} else if locked {
			s.log.Info().Str("name", name).Str("role", role).Msg("login throttled")
			return "", nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.FindByNameAndRole(ctx, name, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, name, role)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.verifyAndMigrate(ctx, user, password); err != nil {
		s.recordFailure(ctx, name, role)
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, name, role); err != nil {
			s.log.Warn().Err(err).Str("name", name).Msg("throttle reset failed")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

// verifyAndMigrate runs the dual-path credential check. A hashed credential
// is verified and never rewritten. A legacy plaintext credential must match
// exactly; on success it is overwritten with a bcrypt hash so no plaintext
// survives a successful login.
func (s *AuthService) verifyAndMigrate(ctx context.Context, user *domain.User, password string) error {
	if credential.IsHashed(user.Password) {
		if !credential.Verify(password, user.Password) {
			return domain.ErrInvalidCredentials
		}
		return nil
	}

	if user.Password != password {
		return domain.ErrInvalidCredentials
	}

	hash, err := credential.Hash(password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	user.Password = hash
	s.log.Info().Str("user_id", user.ID).Msg("legacy credential migrated to hash")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, name, role string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, name, role); err != nil {
		s.log.Warn().Err(err).Str("name", name).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
