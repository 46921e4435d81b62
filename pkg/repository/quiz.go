package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// QuizRepository handles quizzes with their questions and answers
type QuizRepository struct {
	db *sqlx.DB
}

type quizSQL struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type questionSQL struct {
	ID        int64     `db:"id"`
	QuizID    int64     `db:"quiz_id"`
	Text      string    `db:"question_text"`
	Order     int       `db:"question_order"`
	CreatedAt time.Time `db:"created_at"`
}

type answerSQL struct {
	ID         int64     `db:"id"`
	QuestionID int64     `db:"question_id"`
	Text       string    `db:"answer_text"`
	IsCorrect  bool      `db:"is_correct"`
	Order      int       `db:"answer_order"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sqlx.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// List returns a page of quizzes ordered by creation time and the total count
func (r *QuizRepository) List(ctx context.Context, activeOnly bool, page, perPage int) ([]domain.Quiz, int, error) {
	page, perPage = domain.NormalizePaging(page, perPage)
	where := ""
	if activeOnly {
		where = " WHERE is_active = 1"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quizzes"+where); err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	var rows []quizSQL
	query := "SELECT id, title, slug, description, is_active, created_at FROM quizzes" + where +
		" ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &rows, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	res := make([]domain.Quiz, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, total, nil
}

// Get retrieves a quiz by id
func (r *QuizRepository) Get(ctx context.Context, id int64) (*domain.Quiz, error) {
	var row quizSQL
	err := r.db.GetContext(ctx, &row, "SELECT id, title, slug, description, is_active, created_at FROM quizzes WHERE id = ?", id)
	if err != nil {
		return nil, mapReadError("get quiz", "Quiz", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new quiz
func (r *QuizRepository) Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	if strings.TrimSpace(q.Title) == "" {
		return nil, domain.Invalid("title", "is required")
	}
	if strings.TrimSpace(q.Slug) == "" {
		return nil, domain.Invalid("slug", "is required")
	}

	row := quizSQL{Title: q.Title, Slug: q.Slug, Description: q.Description, IsActive: q.IsActive, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO quizzes (title, slug, description, is_active, created_at)
		VALUES (:title, :slug, :description, :is_active, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create quiz", "Quiz", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	quiz := row.toDomain()
	return &quiz, nil
}

// Questions returns questions of a quiz in display order
func (r *QuizRepository) Questions(ctx context.Context, quizID int64) ([]domain.Question, error) {
	if _, err := r.Get(ctx, quizID); err != nil {
		return nil, err
	}
	var rows []questionSQL
	err := r.db.SelectContext(ctx, &rows, `SELECT id, quiz_id, question_text, question_order, created_at
		FROM questions WHERE quiz_id = ? ORDER BY question_order, id`, quizID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	res := make([]domain.Question, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// GetQuestion retrieves a question by id
func (r *QuizRepository) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	var row questionSQL
	err := r.db.GetContext(ctx, &row, `SELECT id, quiz_id, question_text, question_order, created_at
		FROM questions WHERE id = ?`, id)
	if err != nil {
		return nil, mapReadError("get question", "Question", err)
	}
	res := row.toDomain()
	return &res, nil
}

// CreateQuestion adds a question to the quiz q.QuizID
func (r *QuizRepository) CreateQuestion(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, domain.Invalid("question_text", "is required")
	}
	if _, err := r.Get(ctx, q.QuizID); err != nil {
		return nil, err
	}

	row := questionSQL{QuizID: q.QuizID, Text: q.Text, Order: q.Order, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO questions (quiz_id, question_text, question_order, created_at)
		VALUES (:quiz_id, :question_text, :question_order, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create question", "Question", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	question := row.toDomain()
	return &question, nil
}

// Answers returns answers of a question in display order
func (r *QuizRepository) Answers(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	if _, err := r.GetQuestion(ctx, questionID); err != nil {
		return nil, err
	}
	var rows []answerSQL
	err := r.db.SelectContext(ctx, &rows, `SELECT id, question_id, answer_text, is_correct, answer_order, created_at
		FROM answers WHERE question_id = ? ORDER BY answer_order, id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	res := make([]domain.Answer, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// CreateAnswer adds an answer to the question a.QuestionID
func (r *QuizRepository) CreateAnswer(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	if strings.TrimSpace(a.Text) == "" {
		return nil, domain.Invalid("answer_text", "is required")
	}
	if _, err := r.GetQuestion(ctx, a.QuestionID); err != nil {
		return nil, err
	}

	row := answerSQL{QuestionID: a.QuestionID, Text: a.Text, IsCorrect: a.IsCorrect, Order: a.Order, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO answers (question_id, answer_text, is_correct, answer_order, created_at)
		VALUES (:question_id, :answer_text, :is_correct, :answer_order, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create answer", "Answer", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	answer := row.toDomain()
	return &answer, nil
}

func (q quizSQL) toDomain() domain.Quiz {
	return domain.Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Slug:        q.Slug,
		Description: q.Description,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
	}
}

func (q questionSQL) toDomain() domain.Question {
	return domain.Question{ID: q.ID, QuizID: q.QuizID, Text: q.Text, Order: q.Order, CreatedAt: q.CreatedAt}
}

func (a answerSQL) toDomain() domain.Answer {
	return domain.Answer{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Text:       a.Text,
		IsCorrect:  a.IsCorrect,
		Order:      a.Order,
		CreatedAt:  a.CreatedAt,
	}
}
