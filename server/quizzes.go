package server

import (
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/domain"
)

type quizzesResponse struct {
	Quizzes []domain.Quiz `json:"quizzes"`
	paged
}

type questionsResponse struct {
	QuizID    int64             `json:"quiz_id"`
	Questions []domain.Question `json:"questions"`
}

type answersResponse struct {
	QuestionID int64           `json:"question_id"`
	Answers    []domain.Answer `json:"answers"`
}

func (s *Server) listQuizzesHandler(w http.ResponseWriter, r *http.Request) {
	page, perPage := domain.NormalizePaging(queryInt(r, "page", domain.DefaultPage), queryInt(r, "per_page", domain.DefaultPerPage))
	quizzes, total, err := s.stores.Quizzes.List(r.Context(), queryBool(r, "active", true), page, perPage)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, quizzesResponse{Quizzes: nonNil(quizzes), paged: newPaged(total, page, perPage)})
}

func (s *Server) getQuizHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	quiz, err := s.stores.Quizzes.Get(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, quiz)
}

func (s *Server) createQuizHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	q := domain.Quiz{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slugOrName(req.Slug, req.Title),
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	created, err := s.stores.Quizzes.Create(r.Context(), &q)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// quizChildHandler serves GET /quizzes/{id}/questions and GET /quizzes/questions/{id},
// the two patterns overlap and can't be registered separately
func (s *Server) quizChildHandler(w http.ResponseWriter, r *http.Request) {
	first, second := r.PathValue("first"), r.PathValue("second")
	switch {
	case first == "questions":
		r.SetPathValue("id", second)
		s.getQuestionHandler(w, r)
	case second == "questions":
		r.SetPathValue("id", first)
		s.listQuestionsHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) listQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	questions, err := s.stores.Quizzes.Questions(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, questionsResponse{QuizID: id, Questions: nonNil(questions)})
}

func (s *Server) getQuestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	question, err := s.stores.Quizzes.GetQuestion(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, question)
}

func (s *Server) createQuestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	var req struct {
		Text  string `json:"question_text"`
		Order int    `json:"question_order"`
	}
	if err = decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	created, err := s.stores.Quizzes.CreateQuestion(r.Context(), &domain.Question{
		QuizID: id, Text: strings.TrimSpace(req.Text), Order: req.Order})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) listAnswersHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	answers, err := s.stores.Quizzes.Answers(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, answersResponse{QuestionID: id, Answers: nonNil(answers)})
}

func (s *Server) createAnswerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	var req struct {
		Text      string `json:"answer_text"`
		IsCorrect bool   `json:"is_correct"`
		Order     int    `json:"answer_order"`
	}
	if err = decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	created, err := s.stores.Quizzes.CreateAnswer(r.Context(), &domain.Answer{
		QuestionID: id, Text: strings.TrimSpace(req.Text), IsCorrect: req.IsCorrect, Order: req.Order})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}
