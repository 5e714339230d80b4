package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sreeja24H51A66DH/lendahand1/internal/auth"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo        repository.UserRepository
	tokens      *auth.Service
	emailDomain string
}

func NewUserService(repo repository.UserRepository, tokens *auth.Service, emailDomain string) UserService {
	return &userService{repo: repo, tokens: tokens, emailDomain: emailDomain}
}

func (s *userService) Signup(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: password is required", ErrValidation)
	}
	if !strings.HasSuffix(email, s.emailDomain) {
		return nil, "", fmt.Errorf("%w: only %s emails are allowed", ErrValidation, s.emailDomain)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
