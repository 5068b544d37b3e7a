package dto

// DashboardStats summarizes a user's study history.
type DashboardStats struct {
	QuizzesTaken           int     `json:"quizzesTaken"`
	AverageScore           float64 `json:"averageScore"`
	TotalQuestionsAnswered int     `json:"totalQuestionsAnswered"`
	FlashcardSets          int64   `json:"flashcardSets"`
}

// ActivityItem is one row in the recent-activity feed. Score is a display
// string: "3/5" for a quiz attempt, "12 cards" for a flashcard set.
type ActivityItem struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Score string `json:"score"`
	Time  string `json:"time"`
}

// PerformancePoint is one month's average score percentage.
type PerformancePoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardResponse is the combined payload for the dashboard page.
type DashboardResponse struct {
	UserName       string             `json:"userName"`
	Stats          DashboardStats     `json:"stats"`
	RecentActivity []ActivityItem     `json:"recentActivity"`
	Performance    []PerformancePoint `json:"performance"`
}
