package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type LogRepo interface {
	Append(ctx context.Context, action, detail string) domain.LogEntry
}

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
	logRepo    LogRepo
}

func New(repo Repo, jwtService auth.JWTServiceInterface, logRepo LogRepo) *Service {
	return &Service{
		userRepo:   repo,
		jwtService: jwtService,
		logRepo:    logRepo,
	}
}

// ErrEmptyIdentity rejects sign-in attempts with a blank name or email.
// Beyond that there is no credential verification at all: any name/email
// pair is accepted as-is. This is a deliberate stub, not an auth system.
var ErrEmptyIdentity = errors.New("name and email are required")

// Register establishes a session for the given identity, creating the user
// record on first sight of the email.
func (s *Service) Register(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrEmptyIdentity
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		s.logRepo.Append(ctx, "auth.login", email)
		return existingUser, nil
	}

	user := &domain.User{
		Name:  name,
		Email: email,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	s.logRepo.Append(ctx, "auth.register", email)
	zap.L().Info("user registered", zap.String("email", email))
	return newUser, nil
}

// SignIn is the same mock contract as Register: an unknown email simply
// creates the account.
func (s *Service) SignIn(ctx context.Context, name, email string) (*domain.User, error) {
	return s.Register(ctx, name, email)
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
