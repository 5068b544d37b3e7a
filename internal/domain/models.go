package domain

import "time"

// Question is a single multiple-choice question inside a quiz. Options always
// holds exactly four entries and CorrectAnswerIndex indexes into it.
type Question struct {
	QuestionText       string   `bson:"questionText" json:"questionText"`
	Options            []string `bson:"options" json:"options"`
	CorrectAnswerIndex int      `bson:"correctAnswerIndex" json:"correctAnswerIndex"`
}

// Flashcard is a single question/answer pair inside a flashcard set.
type Flashcard struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// Quiz is an immutable, user-owned quiz generated from an uploaded document.
// It is created exactly once and never edited; attempts reference it by ID.
type Quiz struct {
	ID        string     `bson:"_id" json:"id"`
	OwnerID   string     `bson:"ownerId" json:"ownerId"`
	Topic     string     `bson:"topic" json:"topic"`
	Questions []Question `bson:"questions" json:"questions"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}

// FlashcardSet follows the same ownership and immutability pattern as Quiz.
type FlashcardSet struct {
	ID        string      `bson:"_id" json:"id"`
	OwnerID   string      `bson:"ownerId" json:"ownerId"`
	Topic     string      `bson:"topic" json:"topic"`
	Cards     []Flashcard `bson:"cards" json:"cards"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}

// Answer records the option a user selected for one question position.
type Answer struct {
	QuestionIndex       int `bson:"questionIndex" json:"questionIndex"`
	SelectedOptionIndex int `bson:"selectedOptionIndex" json:"selectedOptionIndex"`
}

// QuizAttempt is the append-only record of one scored submission. It has a
// single state transition, absent to created, and is never mutated afterwards.
type QuizAttempt struct {
	ID             string    `bson:"_id" json:"id"`
	QuizID         string    `bson:"quizId" json:"quizId"`
	UserID         string    `bson:"userId" json:"userId"`
	Answers        []Answer  `bson:"answers" json:"answers"`
	Score          int       `bson:"score" json:"score"`
	TotalQuestions int       `bson:"totalQuestions" json:"totalQuestions"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
