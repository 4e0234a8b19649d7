package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
)

// ErrIncorrectCredential indicates a wrong password or a missing admin principal.
var ErrIncorrectCredential = errors.New("incorrect credential")

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer mints session tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// AdminService covers the admin login flow and bootstrap.
type AdminService interface {
	Login(ctx context.Context, password string) (string, error)
	EnsureDefaultAdmin(ctx context.Context) (bool, error)
}

type adminService struct {
	admins          repository.AdminRepository
	hasher          PasswordHasher
	tokens          TokenIssuer
	defaultPassword string
	logger          *logrus.Logger
}

func NewAdminService(admins repository.AdminRepository, hasher PasswordHasher, tokens TokenIssuer, defaultPassword string, logger *logrus.Logger) AdminService {
	if logger == nil {
		logger = logrus.New()
	}
	return &adminService{
		admins:          admins,
		hasher:          hasher,
		tokens:          tokens,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrIncorrectCredential
	}

	admin, err := s.admins.GetByUsername(ctx, domain.DefaultAdminUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrIncorrectCredential
		}
		return "", err
	}

	if !s.hasher.Verify(password, admin.PasswordHash) {
		return "", ErrIncorrectCredential
	}

	token, err := s.tokens.Issue(strconv.FormatInt(admin.ID, 10))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// EnsureDefaultAdmin creates the admin principal if it does not exist yet and
// reports whether this call created it. Losing a creation race to another
// process counts as success.
func (s *adminService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	_, err := s.admins.GetByUsername(ctx, domain.DefaultAdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		return false, err
	}

	admin := &domain.Admin{
		Username:     domain.DefaultAdminUsername,
		PasswordHash: hash,
	}
	if err := s.admins.CreateIfAbsent(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}

	s.logger.WithField("admin_id", admin.ID).Info("admin created")
	return true, nil
}
