package promoservice

import (
	"context"
	"errors"

	"github.com/avoronin/gameshop/internal/domain"
	"go.uber.org/zap"
)

type SessionRepo interface {
	Get(ctx context.Context, userID int) (domain.Session, error)
	SetPromoUnlocked(ctx context.Context, userID int) error
}

type LogRepo interface {
	Append(ctx context.Context, action, detail string) domain.LogEntry
	List(ctx context.Context) []domain.LogEntry
}

type Service struct {
	sessionRepo SessionRepo
	logRepo     LogRepo
}

func New(sessionRepo SessionRepo, logRepo LogRepo) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logRepo:     logRepo,
	}
}

// promoCode ships inside the binary, so it is discoverable by anyone who
// looks. The gate only hides a diagnostic view, not anything sensitive.
var promoCode = "GAMESHOP2024"

var (
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrAdminLocked      = errors.New("admin log is locked")
)

// Unlock flips the session's admin flag on an exact-match code. Repeated
// correct submissions are idempotent; there is no lockout or rate limit.
func (s *Service) Unlock(ctx context.Context, userID int, code string) error {
	if code != promoCode {
		s.logRepo.Append(ctx, "promo.attempt", "rejected")
		zap.L().Info("promo code rejected", zap.Int("user_id", userID))
		return ErrInvalidPromoCode
	}

	if err := s.sessionRepo.SetPromoUnlocked(ctx, userID); err != nil {
		return err
	}
	s.logRepo.Append(ctx, "promo.unlock", "admin log unlocked")
	zap.L().Info("admin log unlocked", zap.Int("user_id", userID))
	return nil
}

// GetLog returns the action log for sessions that entered the promo code.
func (s *Service) GetLog(ctx context.Context, userID int) ([]domain.LogEntry, error) {
	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.PromoUnlocked {
		return nil, ErrAdminLocked
	}
	return s.logRepo.List(ctx), nil
}
