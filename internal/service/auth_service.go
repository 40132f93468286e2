package service

import (
	"sync"
	"time"

	"workload_survey/internal/config"
	"workload_survey/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin surface behind the configured password. Only its bcrypt hash
// is kept in memory.
type AuthService struct {
	mu     sync.RWMutex
	hash   []byte
	secret string
	ttl    time.Duration
	cost   int
}

func NewAuthService(cfg *config.AdminConfig) (*AuthService, error) {
	s := &AuthService{cost: bcrypt.DefaultCost}
	if err := s.Reload(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload applies a changed admin section; the password is rehashed only when it differs.
func (s *AuthService) Reload(cfg *config.AdminConfig) error {
	s.mu.RLock()
	same := s.hash != nil && bcrypt.CompareHashAndPassword(s.hash, []byte(cfg.Password)) == nil
	s.mu.RUnlock()

	var hash []byte
	if !same {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), s.cost)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if hash != nil {
		s.hash = hash
	}
	s.secret = cfg.JWTSecret
	s.ttl = cfg.TokenTTL
	return nil
}

// Login returns an admin token for the right password.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	s.mu.RLock()
	hash, secret, ttl := s.hash, s.secret, s.ttl
	s.mu.RUnlock()

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidPassword
	}
	token, err := util.GenerateJWT(util.RoleAdmin, secret, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, time.Now().Add(ttl), nil
}

// Verify parses an admin token.
func (s *AuthService) Verify(token string) (*util.Claims, error) {
	s.mu.RLock()
	secret := s.secret
	s.mu.RUnlock()

	claims, err := util.ParseJWT(token, secret)
	if err != nil {
		return nil, err
	}
	if claims.Role != util.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}
	return claims, nil
}
