package domain

import "time"

// Quiz is a set of questions shown on the site
type Quiz struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Question belongs to a quiz
type Question struct {
	ID        int64     `json:"id"`
	QuizID    int64     `json:"quiz_id"`
	Text      string    `json:"question_text"`
	Order     int       `json:"question_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Answer belongs to a question
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Text       string    `json:"answer_text"`
	IsCorrect  bool      `json:"is_correct"`
	Order      int       `json:"answer_order"`
	CreatedAt  time.Time `json:"created_at"`
}
