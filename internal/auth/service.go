package auth

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any username or password
// mismatch. No session state changes when it is returned.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CartClearer is the slice of the cart the session needs: logging out
// abandons the sale in progress.
type CartClearer interface {
	Clear()
}

// Service owns the current actor and its lifecycle. At most one actor
// is active at a time; the register is a single-terminal system.
type Service struct {
	directory []credential
	marker    MarkerStore
	cart      CartClearer
	logger    *zap.Logger
	current   *Actor
}

// NewService creates a session service over the fixed demo credential
// directory.
func NewService(marker MarkerStore, cart CartClearer, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		directory: demoDirectory(),
		marker:    marker,
		cart:      cart,
		logger:    logger,
	}
}

// Login validates the credentials against the demo directory and
// establishes the actor. The marker is persisted so the session can
// resume after a restart.
func (s *Service) Login(username, password string) (*Actor, error) {
	for _, cred := range s.directory {
		if cred.username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)) != nil {
			break
		}
		actor := &Actor{Username: cred.username, Role: cred.role, FullName: cred.fullName}
		s.current = actor
		if err := s.marker.Save(actor); err != nil {
			s.logger.Warn("failed to persist session marker", zap.Error(err))
		}
		s.logger.Info("login", zap.String("username", username), zap.String("role", cred.role))
		return actor, nil
	}
	s.logger.Warn("login rejected", zap.String("username", username))
	return nil, ErrInvalidCredentials
}

// Logout clears the actor, the persisted marker and the sale in
// progress. Dropping the cart on logout is intended: the next actor
// starts from an empty register.
func (s *Service) Logout() {
	if s.current != nil {
		s.logger.Info("logout", zap.String("username", s.current.Username))
	}
	s.current = nil
	if err := s.marker.Clear(); err != nil {
		s.logger.Warn("failed to clear session marker", zap.Error(err))
	}
	s.cart.Clear()
}

// Resume restores the actor from a previously persisted marker without
// re-validating credentials. The marker is trusted as written; demo
// behavior only.
func (s *Service) Resume() *Actor {
	actor, err := s.marker.Load()
	if err != nil {
		s.logger.Warn("failed to read session marker", zap.Error(err))
		return nil
	}
	if actor == nil {
		return nil
	}
	s.current = actor
	s.logger.Info("session resumed", zap.String("username", actor.Username))
	return actor
}

// Current returns the active actor, or nil when nobody is signed in.
func (s *Service) Current() *Actor {
	return s.current
}

// Can reports whether the current actor holds the capability. With no
// actor it is always false.
func (s *Service) Can(capability string) bool {
	return HasCapability(s.current, capability)
}
