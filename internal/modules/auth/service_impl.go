package auth

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	users  user.Repository
	issuer *Issuer
}

// NewService creates a new auth service.
func NewService(users user.Repository, issuer *Issuer) Service {
	return &service{users: users, issuer: issuer}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, *user.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return "", nil, apperror.New(apperror.KindValidation, "Missing required fields")
	}

	if err := s.requireUnused(ctx, req.Username, req.Email); err != nil {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperror.Wrap(apperror.KindInternal, "Failed to create user", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		// A concurrent registration can still slip past requireUnused.
		if errors.Is(err, user.ErrDuplicate) {
			return "", nil, apperror.New(apperror.KindValidation, "Username already exists")
		}
		log.Printf("Error creating user: %v", err)
		return "", nil, apperror.Wrap(apperror.KindInternal, "Failed to create user", err)
	}

	token, err := s.issuer.IssueToken(u.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return "", nil, apperror.Wrap(apperror.KindInternal, "Failed to create user", err)
	}
	return token, u, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", apperror.New(apperror.KindValidation, "Missing required fields")
	}

	u, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.New(apperror.KindUnauthorized, "Invalid credentials")
		}
		log.Printf("Error fetching user for login: %v", err)
		return "", apperror.Wrap(apperror.KindInternal, "Failed to log in", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", apperror.New(apperror.KindUnauthorized, "Invalid credentials")
	}

	token, err := s.issuer.IssueToken(u.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return "", apperror.Wrap(apperror.KindInternal, "Failed to log in", err)
	}
	return token, nil
}

func (s *service) Decode(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, apperror.New(apperror.KindValidation, "No token provided")
	}

	userID, err := s.issuer.VerifyToken(token)
	if err != nil {
		return nil, apperror.New(apperror.KindUnauthorized, "Invalid or expired token")
	}

	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "User not found for this token")
		}
		log.Printf("Error fetching user for decode: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to decode token", err)
	}
	return u, nil
}

// requireUnused checks the username and email are free, reporting which
// one collided.
func (s *service) requireUnused(ctx context.Context, username, email string) error {
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return apperror.New(apperror.KindValidation, "Username already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return apperror.Wrap(apperror.KindInternal, "Failed to create user", err)
	}
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return apperror.New(apperror.KindValidation, "Email already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return apperror.Wrap(apperror.KindInternal, "Failed to create user", err)
	}
	return nil
}
