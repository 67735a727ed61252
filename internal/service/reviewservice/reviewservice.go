package reviewservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avoronin/gameshop/internal/domain"
	"go.uber.org/zap"
)

type StateRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type LogRepo interface {
	Append(ctx context.Context, action, detail string) domain.LogEntry
}

type Service struct {
	stateRepo StateRepo
	userRepo  UserRepo
	logRepo   LogRepo
}

func New(stateRepo StateRepo, userRepo UserRepo, logRepo LogRepo) *Service {
	return &Service{
		stateRepo: stateRepo,
		userRepo:  userRepo,
		logRepo:   logRepo,
	}
}

// storageKey is the single key the whole review collection lives under.
const storageKey = "reviews"

const (
	minRating = 1
	maxRating = 5
)

var (
	ErrEmptyReviewText = errors.New("review text is empty")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// seedReviews is shown until the first user review is persisted.
var seedReviews = []domain.Review{
	{ID: 3, Name: "Алексей", Rating: 5, Text: "Робуксы пришли за пару минут, всё честно.", Date: "14.05.2024"},
	{ID: 2, Name: "Марина", Rating: 5, Text: "Покупала голду для Standoff 2, оператор ответил быстро.", Date: "02.05.2024"},
	{ID: 1, Name: "Дима", Rating: 4, Text: "Всё ок, но хотелось бы больше способов оплаты.", Date: "19.04.2024"},
}

// List returns persisted reviews, falling back to the seed set when nothing
// was stored yet. A corrupt stored value surfaces as an error rather than
// being silently replaced.
func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	raw, err := s.stateRepo.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		reviews := make([]domain.Review, len(seedReviews))
		copy(reviews, seedReviews)
		return reviews, nil
	}

	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		zap.L().Error("can't decode stored reviews", zap.Error(err))
		return nil, fmt.Errorf("can't decode stored reviews: %w", err)
	}
	return reviews, nil
}

// Submit prepends a new review and persists the whole collection in one
// overwrite.
func (s *Service) Submit(ctx context.Context, userID int, rating int, text string) (*domain.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReviewText
	}
	if rating < minRating || rating > maxRating {
		return nil, ErrInvalidRating
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	reviews, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := domain.Review{
		ID:     now.UnixMilli(),
		Name:   user.Name,
		Rating: rating,
		Text:   strings.TrimSpace(text),
		Date:   now.Format("02.01.2006"),
	}
	reviews = append([]domain.Review{review}, reviews...)

	raw, err := json.Marshal(reviews)
	if err != nil {
		return nil, err
	}
	if err := s.stateRepo.Set(ctx, storageKey, raw); err != nil {
		return nil, err
	}

	s.logRepo.Append(ctx, "review.submit", fmt.Sprintf("%s, %d/5", user.Name, rating))
	zap.L().Info("review submitted", zap.String("name", user.Name), zap.Int("rating", rating))
	return &review, nil
}
