package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

func TestServer_Quizzes(t *testing.T) {
	srv, _ := testServer(t, true)

	t.Run("list active", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/quizzes", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[quizzesResponse](t, w)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, 1, res.TotalPages)
		require.Len(t, res.Quizzes, 1)
		assert.Equal(t, "news-of-the-week", res.Quizzes[0].Slug)
	})

	t.Run("get", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/quizzes/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "News of the Week", decode[domain.Quiz](t, w).Title)

		w = request(t, srv, http.MethodGet, "/api/quizzes/42", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Quiz not found", errorMessage(t, w))
	})

	t.Run("questions of quiz", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/quizzes/1/questions", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[questionsResponse](t, w)
		assert.Equal(t, int64(1), res.QuizID)
		require.Len(t, res.Questions, 3)
		assert.Equal(t, "What did the central bank do with rates?", res.Questions[0].Text)
		assert.Equal(t, 1, res.Questions[0].Order)

		w = request(t, srv, http.MethodGet, "/api/quizzes/42/questions", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("single question", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/quizzes/questions/2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "How many kilometres of bike lanes were approved?", decode[domain.Question](t, w).Text)

		w = request(t, srv, http.MethodGet, "/api/quizzes/questions/99", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Question not found", errorMessage(t, w))
	})

	t.Run("answers", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/quizzes/questions/3/answers", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[answersResponse](t, w)
		assert.Equal(t, int64(3), res.QuestionID)
		require.Len(t, res.Answers, 2)
		assert.False(t, res.Answers[0].IsCorrect)
		assert.True(t, res.Answers[1].IsCorrect)
		assert.Equal(t, "The underdogs", res.Answers[1].Text)
	})

	t.Run("create quiz with question and answer", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/quizzes", map[string]any{"title": "Science Trivia", "is_active": false}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		quiz := decode[domain.Quiz](t, w)
		assert.Equal(t, "science-trivia", quiz.Slug)
		assert.False(t, quiz.IsActive)

		w = request(t, srv, http.MethodGet, "/api/quizzes?active=false", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[quizzesResponse](t, w).Total)

		w = request(t, srv, http.MethodPost, "/api/quizzes/2/questions",
			map[string]any{"question_text": "How old is the oldest galaxy observed?", "question_order": 1}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		question := decode[domain.Question](t, w)
		assert.Equal(t, int64(2), question.QuizID)
		assert.Equal(t, int64(4), question.ID)

		w = request(t, srv, http.MethodPost, "/api/quizzes/questions/4/answers",
			map[string]any{"answer_text": "Over thirteen billion years", "is_correct": true, "answer_order": 1}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		answer := decode[domain.Answer](t, w)
		assert.Equal(t, int64(4), answer.QuestionID)
		assert.True(t, answer.IsCorrect)
	})

	t.Run("create errors", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/quizzes", map[string]any{"title": "News of the week"}, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		w = request(t, srv, http.MethodPost, "/api/quizzes/42/questions", map[string]any{"question_text": "orphan"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = request(t, srv, http.MethodPost, "/api/quizzes/1/questions", map[string]any{"question_text": " "}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "question_text: is required", errorMessage(t, w))

		w = request(t, srv, http.MethodPost, "/api/quizzes/questions/99/answers", map[string]any{"answer_text": "orphan"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_QuizChildHandler(t *testing.T) {
	srv, _ := testServer(t, false)

	// neither segment is "questions"
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/1/answers", http.NoBody)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, srv, http.MethodGet, "/api/quizzes/abc/questions", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `id: invalid id "abc"`, errorMessage(t, w))

	w = request(t, srv, http.MethodGet, "/api/quizzes/questions/0", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
