package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"studydeck/internal/domain"
	"studydeck/internal/dto"
	"studydeck/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultActivityLimit    = 10
	defaultPerformanceSpan  = 5
	activityTypeQuiz        = "quiz"
	activityTypeFlashcards  = "flashcards"
	unknownQuizTopicDisplay = "Deleted quiz"
)

// DashboardService aggregates a user's study history for the dashboard page.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.DashboardStats, error)
	GetRecentActivity(ctx context.Context, userID string, limit int) ([]dto.ActivityItem, error)
	GetPerformance(ctx context.Context, userID string, months int) ([]dto.PerformancePoint, error)
}

type dashboardServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.QuizAttemptRepository
	quizRepo    domain.QuizRepository
	setRepo     domain.FlashcardSetRepository
	now         func() time.Time
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(
	userRepo domain.UserRepository,
	attemptRepo domain.QuizAttemptRepository,
	quizRepo domain.QuizRepository,
	setRepo domain.FlashcardSetRepository,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		quizRepo:    quizRepo,
		setRepo:     setRepo,
		now:         time.Now,
	}
}

// GetDashboard fans the three section queries out concurrently and combines
// them into one payload.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	var (
		stats       *dto.DashboardStats
		activity    []dto.ActivityItem
		performance []dto.PerformancePoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.GetStats(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		activity, err = s.GetRecentActivity(gctx, userID, 5)
		return err
	})
	g.Go(func() error {
		var err error
		performance, err = s.GetPerformance(gctx, userID, defaultPerformanceSpan)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		UserName:       user.Username,
		Stats:          *stats,
		RecentActivity: activity,
		Performance:    performance,
	}, nil
}

func (s *dashboardServiceImpl) GetStats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	attempts, err := s.attemptRepo.GetAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz attempts", err)
	}
	setCount, err := s.setRepo.CountSetsByOwner(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count flashcard sets", err)
	}

	totalScore, totalQuestions := 0, 0
	for _, attempt := range attempts {
		totalScore += attempt.Score
		totalQuestions += attempt.TotalQuestions
	}
	averageScore := 0.0
	if totalQuestions > 0 {
		averageScore = math.Round(float64(totalScore)/float64(totalQuestions)*100*100) / 100
	}

	return &dto.DashboardStats{
		QuizzesTaken:           len(attempts),
		AverageScore:           averageScore,
		TotalQuestionsAnswered: totalQuestions,
		FlashcardSets:          setCount,
	}, nil
}

// GetRecentActivity merges the user's latest quiz attempts and flashcard
// sets into one feed, newest first.
func (s *dashboardServiceImpl) GetRecentActivity(ctx context.Context, userID string, limit int) ([]dto.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	attempts, err := s.attemptRepo.GetRecentAttemptsByUser(ctx, userID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load recent attempts", err)
	}
	sets, err := s.setRepo.GetRecentSetsByOwner(ctx, userID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load recent flashcard sets", err)
	}

	topics := s.quizTopics(ctx, attempts)

	type timedItem struct {
		item dto.ActivityItem
		at   time.Time
	}
	items := make([]timedItem, 0, len(attempts)+len(sets))

	for _, attempt := range attempts {
		topic, ok := topics[attempt.QuizID]
		if !ok {
			topic = unknownQuizTopicDisplay
		}
		items = append(items, timedItem{
			item: dto.ActivityItem{
				ID:    attempt.ID,
				Type:  activityTypeQuiz,
				Topic: topic,
				Score: fmt.Sprintf("%d/%d", attempt.Score, attempt.TotalQuestions),
				Time:  timeAgo(attempt.CreatedAt, s.now()),
			},
			at: attempt.CreatedAt,
		})
	}
	for _, set := range sets {
		items = append(items, timedItem{
			item: dto.ActivityItem{
				ID:    set.ID,
				Type:  activityTypeFlashcards,
				Topic: set.Topic,
				Score: fmt.Sprintf("%d cards", len(set.Cards)),
				Time:  timeAgo(set.CreatedAt, s.now()),
			},
			at: set.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].at.After(items[j].at) })
	if len(items) > limit {
		items = items[:limit]
	}

	activity := make([]dto.ActivityItem, len(items))
	for i, it := range items {
		activity[i] = it.item
	}
	return activity, nil
}

// quizTopics resolves the distinct quiz IDs behind the attempts with one
// batched lookup. A failed lookup degrades the feed to fallback topics
// instead of failing it.
func (s *dashboardServiceImpl) quizTopics(ctx context.Context, attempts []domain.QuizAttempt) map[string]string {
	seen := make(map[string]bool, len(attempts))
	ids := make([]string, 0, len(attempts))
	for _, attempt := range attempts {
		if !seen[attempt.QuizID] {
			seen[attempt.QuizID] = true
			ids = append(ids, attempt.QuizID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	quizzes, err := s.quizRepo.GetQuizzesByIDs(ctx, ids)
	if err != nil {
		logger.Get().Warn("Failed to resolve quiz topics for activity feed", zap.Error(err))
		return nil
	}

	topics := make(map[string]string, len(quizzes))
	for _, quiz := range quizzes {
		topics[quiz.ID] = quiz.Topic
	}
	return topics
}

// GetPerformance buckets the user's attempts by calendar month and returns
// the average score percentage for each of the last `months` months, oldest
// first. Months with no attempts score zero.
func (s *dashboardServiceImpl) GetPerformance(ctx context.Context, userID string, months int) ([]dto.PerformancePoint, error) {
	if months <= 0 {
		months = defaultPerformanceSpan
	}

	now := s.now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	attempts, err := s.attemptRepo.GetAttemptsByUserSince(ctx, userID, windowStart)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load attempts for performance", err)
	}

	type bucket struct{ score, questions int }
	buckets := make(map[string]*bucket, months)
	monthKey := func(t time.Time) string { return t.Format("2006-01") }
	for _, attempt := range attempts {
		key := monthKey(attempt.CreatedAt)
		if buckets[key] == nil {
			buckets[key] = &bucket{}
		}
		buckets[key].score += attempt.Score
		buckets[key].questions += attempt.TotalQuestions
	}

	performance := make([]dto.PerformancePoint, 0, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0)
		value := 0
		if b := buckets[monthKey(month)]; b != nil && b.questions > 0 {
			value = int(math.Round(float64(b.score) / float64(b.questions) * 100))
		}
		performance = append(performance, dto.PerformancePoint{
			Label: month.Format("Jan"),
			Value: value,
		})
	}
	return performance, nil
}

// timeAgo renders a timestamp as a coarse "time ago" label.
func timeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if interval := seconds / 31536000; interval >= 1 {
		return fmt.Sprintf("%dy ago", interval)
	}
	if interval := seconds / 2592000; interval >= 1 {
		return fmt.Sprintf("%dmo ago", interval)
	}
	if interval := seconds / 86400; interval >= 1 {
		return fmt.Sprintf("%dd ago", interval)
	}
	if interval := seconds / 3600; interval >= 1 {
		return fmt.Sprintf("%dh ago", interval)
	}
	if interval := seconds / 60; interval >= 1 {
		return fmt.Sprintf("%dm ago", interval)
	}
	return "just now"
}
