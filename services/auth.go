package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Fecu3799/project-arq-web/database"
	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues bearer tokens against the users collection and resolves
// them back to actors for the RBAC gate.
type AuthService interface {
	Login(email, password string) (string, models.Actor, error)
	Resolve(token string) (*models.Actor, error)
	Revoke(token string) error
}

// DefaultAuthService implements AuthService over the store and an injected
// session store.
type DefaultAuthService struct {
	Store    database.Store
	Sessions SessionStore
	TokenTTL time.Duration
}

func (s *DefaultAuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 2 * time.Hour
}

// Login verifies the credentials and mints a bearer token. The session is
// keyed by the token's SHA-256 hash, so possession of the token is required
// to resolve it.
func (s *DefaultAuthService) Login(email, password string) (string, models.Actor, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", models.Actor{}, utils.NewInvalidInput("email and password are required")
	}

	users, err := s.Store.LoadUsers()
	if err != nil {
		return "", models.Actor{}, err
	}
	var user *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return "", models.Actor{}, utils.NewUnauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.Actor{}, utils.NewUnauthorized("invalid email or password")
	}

	token, err := utils.GenerateToken(strconv.Itoa(user.ID), user.Role, s.ttl())
	if err != nil {
		utils.GetLogger().Error("Login: failed to sign token", zap.Error(err))
		return "", models.Actor{}, utils.NewInternal("A session could not be established")
	}

	actor := models.Actor{ID: user.ID, Role: user.Role, Name: user.Name, Email: user.Email}
	session := Session{Actor: actor, CreatedAt: time.Now()}
	if err := s.Sessions.Save(utils.HashToken(token), session); err != nil {
		utils.GetLogger().Error("Login: failed to save session", zap.Error(err))
		return "", models.Actor{}, utils.NewInternal("A session could not be established")
	}
	return token, actor, nil
}

// Resolve validates the token signature and looks up the live session.
func (s *DefaultAuthService) Resolve(token string) (*models.Actor, error) {
	if token == "" {
		return nil, utils.NewUnauthorized("missing authentication token")
	}
	if _, err := utils.ValidateToken(token); err != nil {
		return nil, utils.NewUnauthorized("invalid or expired token")
	}
	session, err := s.Sessions.Get(utils.HashToken(token))
	if err != nil {
		utils.GetLogger().Error("Resolve: session lookup failed", zap.Error(err))
		return nil, utils.NewInternal("The session could not be verified")
	}
	if session == nil {
		return nil, utils.NewUnauthorized("invalid or expired token")
	}
	actor := session.Actor
	return &actor, nil
}

// Revoke drops the session behind the token. Revoking an unknown token is a
// no-op.
func (s *DefaultAuthService) Revoke(token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(utils.HashToken(token))
}
