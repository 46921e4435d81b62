// Package seed loads demo content and imports articles from external feeds
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
	"github.com/umputun/newsdesk/pkg/repository"
)

// Result counts records created by a seeding run, existing records are not counted
type Result struct {
	Authors    int `json:"authors"`
	Categories int `json:"categories"`
	Tags       int `json:"tags"`
	Articles   int `json:"articles"`
	Settings   int `json:"settings"`
	MenuItems  int `json:"menu_items"`
	Pages      int `json:"pages"`
	Quizzes    int `json:"quizzes"`
	Stocks     int `json:"stocks"`
}

// Seeder fills an empty database with demo content. Running it again only adds
// what is missing and never overwrites existing records.
type Seeder struct {
	repos     *repository.Repositories
	processor *content.Processor
	now       func() time.Time
}

// New makes a Seeder
func New(repos *repository.Repositories, processor *content.Processor) *Seeder {
	return &Seeder{repos: repos, processor: processor, now: time.Now}
}

// Run creates the demo data set
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	steps := []struct {
		name string
		fn   func(context.Context, *Result) error
	}{
		{"authors", s.seedAuthors},
		{"categories", s.seedCategories},
		{"tags", s.seedTags},
		{"articles", s.seedArticles},
		{"settings", s.seedSettings},
		{"menu", s.seedMenu},
		{"pages", s.seedPages},
		{"quiz", s.seedQuiz},
		{"stocks", s.seedStocks},
	}
	for _, step := range steps {
		if err := step.fn(ctx, &res); err != nil {
			return res, fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	lgr.Printf("[INFO] seeded %d authors, %d categories, %d tags, %d articles, %d settings, %d menu items, %d pages, %d quizzes, %d stocks",
		res.Authors, res.Categories, res.Tags, res.Articles, res.Settings, res.MenuItems, res.Pages, res.Quizzes, res.Stocks)
	return res, nil
}

func (s *Seeder) seedAuthors(ctx context.Context, res *Result) error {
	for _, a := range demoAuthors {
		created, err := ensureAuthor(ctx, s.repos.Author, a)
		if err != nil {
			return err
		}
		if created {
			res.Authors++
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, res *Result) error {
	for _, c := range demoCategories {
		_, created, err := ensureCategory(ctx, s.repos.Category, c)
		if err != nil {
			return err
		}
		if created {
			res.Categories++
		}
	}
	return nil
}

func (s *Seeder) seedTags(ctx context.Context, res *Result) error {
	for _, slug := range demoTags {
		_, created, err := ensureTag(ctx, s.repos.Tag, slug)
		if err != nil {
			return err
		}
		if created {
			res.Tags++
		}
	}
	return nil
}

func (s *Seeder) seedArticles(ctx context.Context, res *Result) error {
	for i, da := range demoArticles {
		a := &domain.Article{
			Title:       da.title,
			Content:     da.content,
			Excerpt:     da.excerpt,
			ImageURL:    da.image,
			ImageAlt:    da.title,
			IsPublished: da.published,
			PublishedAt: s.now().UTC().Add(-time.Duration(da.daysAgo)*24*time.Hour - time.Duration(i)*time.Minute),
		}
		s.processor.PrepareArticle(a)

		exists, err := s.repos.Article.SlugExists(ctx, a.Slug)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		author, err := s.repos.Author.GetByEmail(ctx, da.author)
		if err != nil {
			return err
		}
		a.AuthorID = author.ID
		cat, err := s.repos.Category.GetBySlug(ctx, da.category)
		if err != nil {
			return err
		}
		a.CategoryID = &cat.ID

		tagIDs := make([]int64, 0, len(da.tags))
		for _, slug := range da.tags {
			tag, err := s.repos.Tag.GetBySlug(ctx, slug)
			if err != nil {
				return err
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		if _, err := s.repos.Article.Create(ctx, a, tagIDs); err != nil {
			return err
		}
		if da.views > 0 {
			if err := s.repos.Article.SetViews(ctx, a.Slug, int64(da.views)); err != nil {
				return err
			}
		}
		res.Articles++
	}
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context, res *Result) error {
	for _, ds := range demoSettings {
		_, err := s.repos.Setting.Get(ctx, ds.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		desc := ds.description
		upd := domain.SettingUpdate{Key: ds.key, Type: ds.typ, Value: ds.value, Description: &desc}
		if _, err := s.repos.Setting.Set(ctx, upd); err != nil {
			return err
		}
		res.Settings++
	}
	return nil
}

func (s *Seeder) seedMenu(ctx context.Context, res *Result) error {
	for _, mt := range []domain.MenuType{domain.MenuHeader, domain.MenuFooter} {
		existing, err := s.repos.Menu.List(ctx, mt, false)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for _, item := range demoMenu {
			if item.MenuType != mt {
				continue
			}
			item.IsActive = true
			if _, err := s.repos.Menu.Create(ctx, &item); err != nil {
				return err
			}
			res.MenuItems++
		}
	}
	return nil
}

func (s *Seeder) seedPages(ctx context.Context, res *Result) error {
	for _, p := range demoPages {
		_, err := s.repos.Page.GetPublishedBySlug(ctx, p.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		p.IsPublished = true
		s.processor.PreparePage(&p)
		if _, err := s.repos.Page.Create(ctx, &p); err != nil {
			if errors.Is(err, domain.ErrConflict) { // exists as unpublished
				continue
			}
			return err
		}
		res.Pages++
	}
	return nil
}

func (s *Seeder) seedQuiz(ctx context.Context, res *Result) error {
	quizzes, _, err := s.repos.Quiz.List(ctx, false, 1, domain.MaxPerPage)
	if err != nil {
		return err
	}
	for _, q := range quizzes {
		if q.Slug == demoQuiz.Slug {
			return nil
		}
	}

	q := demoQuiz
	q.IsActive = true
	quiz, err := s.repos.Quiz.Create(ctx, &q)
	if err != nil {
		return err
	}
	for i, dq := range demoQuestions {
		question, err := s.repos.Quiz.CreateQuestion(ctx, &domain.Question{QuizID: quiz.ID, Text: dq.text, Order: i + 1})
		if err != nil {
			return err
		}
		for j, text := range dq.answers {
			answer := &domain.Answer{QuestionID: question.ID, Text: text, IsCorrect: j == dq.correct, Order: j + 1}
			if _, err := s.repos.Quiz.CreateAnswer(ctx, answer); err != nil {
				return err
			}
		}
	}
	res.Quizzes++
	return nil
}

func (s *Seeder) seedStocks(ctx context.Context, res *Result) error {
	for _, q := range demoStocks {
		_, err := s.repos.Stock.Get(ctx, q.Symbol)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if _, err := s.repos.Stock.Create(ctx, &q); err != nil {
			return err
		}
		res.Stocks++
	}
	return nil
}

// ensureAuthor creates the author unless one with the same email exists
func ensureAuthor(ctx context.Context, repo *repository.AuthorRepository, a domain.Author) (bool, error) {
	_, err := repo.GetByEmail(ctx, a.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	if _, err := repo.Create(ctx, &a); err != nil {
		return false, err
	}
	return true, nil
}

// ensureCategory returns the category with c.Slug, creating it when missing
func ensureCategory(ctx context.Context, repo *repository.CategoryRepository, c domain.Category) (*domain.Category, bool, error) {
	existing, err := repo.GetBySlug(ctx, c.Slug)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}
	created, err := repo.Create(ctx, &c)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// ensureTag returns the tag with slug, creating it with a title-cased name when missing
func ensureTag(ctx context.Context, repo *repository.TagRepository, slug string) (*domain.Tag, bool, error) {
	existing, err := repo.GetBySlug(ctx, slug)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}
	created, err := repo.Create(ctx, &domain.Tag{Name: titleFromSlug(slug), Slug: slug})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func titleFromSlug(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
