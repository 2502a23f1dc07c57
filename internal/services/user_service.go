package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// UserStore defines what the user service needs from the credential store.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByRef(ctx context.Context, ref string) (models.Account, error)
	Insert(ctx context.Context, acc models.Account) (models.Ref, error)
	UpdateProfile(ctx context.Context, id models.Ref, bio string, interests []string) error
}

// TokenIssuer abstracts session token creation.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
}

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	Token string               `json:"token"`
	User  models.PublicAccount `json:"user"`
}

// Profile is the response shape of a profile update.
type Profile struct {
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

// UserService orchestrates registration, login and profile management.
type UserService struct {
	store     UserStore
	tokens    TokenIssuer
	adminCode string
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, tokens TokenIssuer, adminCode string) *UserService {
	return &UserService{store: store, tokens: tokens, adminCode: adminCode}
}

// Register creates an account, grants the admin role when the activation code
// matches exactly, and issues a session token.
func (s *UserService) Register(ctx context.Context, name, email, password, adminCode string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	adminCode = strings.TrimSpace(adminCode)

	if name == "" || email == "" || password == "" {
		return AuthResult{}, apperr.New(apperr.ErrValidation, "All fields are required.")
	}

	// Friendly pre-check; the store's unique email index is the real guard
	// against a concurrent double-register.
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return AuthResult{}, apperr.New(apperr.ErrConflict, "User already exists")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, apperr.Wrap(apperr.ErrInfrastructure, err, "password hashing failed")
	}

	role := models.RoleUser
	if adminCode == s.adminCode {
		role = models.RoleAdmin
	}

	acc := models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.store.Insert(ctx, acc)
	if err != nil {
		return AuthResult{}, err
	}
	acc.ID = id

	token, err := s.tokens.Issue(id.String())
	if err != nil {
		return AuthResult{}, apperr.Wrap(apperr.ErrInfrastructure, err, "token issuance failed")
	}
	return AuthResult{Token: token, User: acc.Public()}, nil
}

// Login authenticates by normalized email and password. An unknown email is
// reported distinctly from a wrong password; the frontend depends on that.
func (s *UserService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, apperr.New(apperr.ErrValidation, "Email and password required")
	}

	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return AuthResult{}, apperr.New(apperr.ErrNotFound, "Username does not exist")
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, apperr.New(apperr.ErrAuthentication, "Invalid password")
	}

	token, err := s.tokens.Issue(acc.ID.String())
	if err != nil {
		return AuthResult{}, apperr.Wrap(apperr.ErrInfrastructure, err, "token issuance failed")
	}
	return AuthResult{Token: token, User: acc.Public()}, nil
}

// ResolveAccount loads the account a token subject points at. Satisfies
// auth.AccountResolver.
func (s *UserService) ResolveAccount(ctx context.Context, ref string) (models.Account, error) {
	return s.store.FindByRef(ctx, ref)
}

// UpdateProfile persists bio and interests and marks the profile completed.
func (s *UserService) UpdateProfile(ctx context.Context, id models.Ref, bio string, interests []string) (Profile, error) {
	bio = strings.TrimSpace(bio)
	if interests == nil {
		interests = []string{}
	}
	if err := s.store.UpdateProfile(ctx, id, bio, interests); err != nil {
		return Profile{}, err
	}
	return Profile{Bio: bio, Interests: interests}, nil
}
