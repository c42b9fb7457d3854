package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
	"openshelf-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type authService struct {
	memberRepo repository.MemberRepository
	tokens     security.TokenManager
}

func NewAuthService(memberRepo repository.MemberRepository, tokens security.TokenManager) AuthService {
	return &authService{memberRepo: memberRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, name, email, phone, address, password string) (*domain.Member, string, error) {
	if _, err := s.memberRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	member := &domain.Member{
		Name:         name,
		Email:        email,
		PhoneNumber:  phone,
		Address:      address,
		PasswordHash: string(hash),
		MemberSince:  time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(member.ID, member.Email)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessToken(member.ID, member.Email)
}
