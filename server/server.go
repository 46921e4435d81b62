package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsdesk/pkg/auth"
	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
	"github.com/umputun/newsdesk/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/categories.go -pkg mocks -skip-ensure -fmt goimports . CategoryStore
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/users.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	stores    Stores
	tokens    TokenService
	processor *content.Processor
	rss       *feed.Generator
	opts      Opts

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Opts holds server options not covered by ConfigProvider
type Opts struct {
	Version  string
	Debug    bool
	SiteName string
	BaseURL  string
	Throttle int // max concurrent requests, 0 means 1000
	RSSItems int // articles in the feed, 0 means 100
}

// Services are the non-storage dependencies of the handlers
type Services struct {
	Tokens    TokenService
	Processor *content.Processor
	RSS       *feed.Generator
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// TokenService issues and verifies access tokens
type TokenService interface {
	Issue(u *domain.User) (auth.Token, error)
	Parse(token string) (*auth.Claims, error)
}

// HealthChecker verifies the storage is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ArticleStore is the article query engine and article persistence
type ArticleStore interface {
	Query(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error)
	Search(ctx context.Context, text string, page, perPage int) (*domain.ArticlePage, error)
	Trending(ctx context.Context, days, limit int) ([]domain.Article, error)
	MostViewed(ctx context.Context, limit int) ([]domain.Article, error)
	Recent(ctx context.Context, limit int) ([]domain.Article, error)
	RecentByCategory(ctx context.Context, categorySlug string, limit int) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string, countView bool) (*domain.Article, error)
	Create(ctx context.Context, a *domain.Article, tagIDs []int64) (*domain.Article, error)
	Update(ctx context.Context, slug string, upd domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, slug string) error
	Stats(ctx context.Context) (domain.SiteStats, error)
	CountPublished(ctx context.Context) (int, error)
}

// CategoryStore persists categories
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Popular(ctx context.Context, limit int) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, slug string, upd domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, slug string) error
}

// AuthorStore persists authors
type AuthorStore interface {
	List(ctx context.Context) ([]domain.Author, error)
	Get(ctx context.Context, id int64) (*domain.Author, error)
	Create(ctx context.Context, a *domain.Author) (*domain.Author, error)
	Update(ctx context.Context, id int64, upd domain.AuthorUpdate) (*domain.Author, error)
	Delete(ctx context.Context, id int64) error
}

// TagStore persists tags
type TagStore interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, slug string) error
}

// SettingStore is the typed settings store
type SettingStore interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, upd domain.SettingUpdate) (*domain.Setting, error)
	Update(ctx context.Context, key string, patch domain.SettingPatch) (*domain.Setting, error)
	List(ctx context.Context) (map[string]any, []domain.SettingRecord, error)
	ListByPrefix(ctx context.Context, prefix string) ([]domain.SettingRecord, error)
	Delete(ctx context.Context, key string) error
}

// PageStore persists static pages
type PageStore interface {
	List(ctx context.Context, publishedOnly bool, page, perPage int) ([]domain.Page, int, error)
	Get(ctx context.Context, id int64) (*domain.Page, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Page, error)
	Create(ctx context.Context, p *domain.Page) (*domain.Page, error)
	Update(ctx context.Context, id int64, upd domain.PageUpdate) (*domain.Page, error)
	Delete(ctx context.Context, id int64) error
}

// MenuStore persists navigation menus
type MenuStore interface {
	List(ctx context.Context, menuType domain.MenuType, activeOnly bool) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	Create(ctx context.Context, m *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id int64, upd domain.MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}

// QuizStore persists quizzes with their questions and answers
type QuizStore interface {
	List(ctx context.Context, activeOnly bool, page, perPage int) ([]domain.Quiz, int, error)
	Get(ctx context.Context, id int64) (*domain.Quiz, error)
	Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)
	Questions(ctx context.Context, quizID int64) ([]domain.Question, error)
	GetQuestion(ctx context.Context, id int64) (*domain.Question, error)
	CreateQuestion(ctx context.Context, q *domain.Question) (*domain.Question, error)
	Answers(ctx context.Context, questionID int64) ([]domain.Answer, error)
	CreateAnswer(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
}

// StockStore persists stock quotes
type StockStore interface {
	List(ctx context.Context, limit int) ([]domain.StockQuote, error)
	Trending(ctx context.Context, limit int) ([]domain.StockQuote, error)
	Get(ctx context.Context, symbol string) (*domain.StockQuote, error)
	Create(ctx context.Context, q *domain.StockQuote) (*domain.StockQuote, error)
	Update(ctx context.Context, symbol string, upd domain.StockQuoteUpdate) (*domain.StockQuote, error)
	Delete(ctx context.Context, symbol string) error
}

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error)
}

// Inspector gives read-only access to raw database tables
type Inspector interface {
	Tables(ctx context.Context) ([]domain.TableInfo, error)
	Stats(ctx context.Context) (domain.DBStats, error)
	Rows(ctx context.Context, table string, page, perPage int) (*domain.TableData, error)
}

// Stores groups all storage dependencies of the server
type Stores struct {
	Health     HealthChecker
	Articles   ArticleStore
	Categories CategoryStore
	Authors    AuthorStore
	Tags       TagStore
	Settings   SettingStore
	Pages      PageStore
	Menus      MenuStore
	Quizzes    QuizStore
	Stocks     StockStore
	Users      UserStore
	Inspector  Inspector
}

// New initializes a new server instance
func New(cfg ConfigProvider, stores Stores, svc Services, opts Opts) *Server {
	if opts.Throttle <= 0 {
		opts.Throttle = 1000
	}
	if opts.RSSItems <= 0 {
		opts.RSSItems = 100
	}
	if opts.SiteName == "" {
		opts.SiteName = "Newsdesk"
	}
	if svc.Processor == nil {
		svc.Processor = content.NewProcessor(content.ProcessorOpts{})
	}
	if svc.RSS == nil {
		svc.RSS = feed.NewGenerator(feed.GeneratorOpts{BaseURL: opts.BaseURL, SiteName: opts.SiteName})
	}

	s := &Server{
		config:    cfg,
		stores:    stores,
		tokens:    svc.Tokens,
		processor: svc.Processor,
		rss:       svc.RSS,
		opts:      opts,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// ServeHTTP makes the server usable as http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdesk", "umputun", s.opts.Version))
	s.router.Use(rest.Ping)

	if s.opts.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(int64(s.opts.Throttle)))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /health", s.healthHandler)

		// articles, the static segments win over {slug}
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/trending", s.trendingArticlesHandler)
		r.HandleFunc("GET /articles/recent", s.recentArticlesHandler)
		r.HandleFunc("GET /articles/search", s.searchArticlesHandler)
		r.HandleFunc("GET /articles/{slug}", s.getArticleHandler)
		r.HandleFunc("POST /articles", s.createArticleHandler)
		r.HandleFunc("PUT /articles/{slug}", s.updateArticleHandler)
		r.HandleFunc("DELETE /articles/{slug}", s.deleteArticleHandler)

		r.HandleFunc("GET /categories", s.listCategoriesHandler)
		r.HandleFunc("POST /categories", s.createCategoryHandler)
		r.HandleFunc("GET /categories/{slug}", s.getCategoryHandler)
		r.HandleFunc("GET /categories/{slug}/articles", s.categoryArticlesHandler)
		r.HandleFunc("PUT /categories/{slug}", s.updateCategoryHandler)
		r.HandleFunc("DELETE /categories/{slug}", s.deleteCategoryHandler)

		r.HandleFunc("GET /authors", s.listAuthorsHandler)
		r.HandleFunc("POST /authors", s.createAuthorHandler)
		r.HandleFunc("GET /authors/{id}", s.getAuthorHandler)
		r.HandleFunc("PUT /authors/{id}", s.updateAuthorHandler)
		r.HandleFunc("DELETE /authors/{id}", s.deleteAuthorHandler)

		r.HandleFunc("GET /tags", s.listTagsHandler)
		r.HandleFunc("POST /tags", s.createTagHandler)
		r.HandleFunc("DELETE /tags/{slug}", s.deleteTagHandler)

		r.HandleFunc("GET /settings", s.listSettingsHandler)
		r.HandleFunc("POST /settings", s.createSettingHandler)
		r.HandleFunc("GET /settings/navigation", s.prefixSettingsHandler("nav_"))
		r.HandleFunc("GET /settings/footer", s.prefixSettingsHandler("footer_"))
		r.HandleFunc("GET /settings/seo", s.prefixSettingsHandler("seo_"))
		r.HandleFunc("GET /settings/{key}", s.getSettingHandler)
		r.HandleFunc("PUT /settings/{key}", s.updateSettingHandler)
		r.HandleFunc("DELETE /settings/{key}", s.deleteSettingHandler)

		r.HandleFunc("GET /pages", s.listPagesHandler)
		r.HandleFunc("POST /pages", s.createPageHandler)
		r.HandleFunc("GET /pages/slug/{slug}", s.getPageBySlugHandler)
		r.HandleFunc("GET /pages/{id}", s.getPageHandler)
		r.HandleFunc("PUT /pages/{id}", s.updatePageHandler)
		r.HandleFunc("DELETE /pages/{id}", s.deletePageHandler)

		r.HandleFunc("GET /menu", s.listMenuHandler)
		r.HandleFunc("POST /menu", s.createMenuItemHandler)
		r.HandleFunc("GET /menu/header", s.menuByTypeHandler(domain.MenuHeader))
		r.HandleFunc("GET /menu/footer", s.menuByTypeHandler(domain.MenuFooter))
		r.HandleFunc("GET /menu/{id}", s.getMenuItemHandler)
		r.HandleFunc("PUT /menu/{id}", s.updateMenuItemHandler)
		r.HandleFunc("DELETE /menu/{id}", s.deleteMenuItemHandler)

		r.HandleFunc("GET /quizzes", s.listQuizzesHandler)
		r.HandleFunc("POST /quizzes", s.createQuizHandler)
		r.HandleFunc("GET /quizzes/{id}", s.getQuizHandler)
		r.HandleFunc("GET /quizzes/{first}/{second}", s.quizChildHandler) // {id}/questions and questions/{id} overlap
		r.HandleFunc("POST /quizzes/{id}/questions", s.createQuestionHandler)
		r.HandleFunc("GET /quizzes/questions/{id}/answers", s.listAnswersHandler)
		r.HandleFunc("POST /quizzes/questions/{id}/answers", s.createAnswerHandler)

		r.HandleFunc("GET /stocks", s.listStocksHandler)
		r.HandleFunc("POST /stocks", s.createStockHandler)
		r.HandleFunc("GET /stocks/trending", s.trendingStocksHandler)
		r.HandleFunc("GET /stocks/{symbol}", s.getStockHandler)
		r.HandleFunc("PUT /stocks/{symbol}", s.updateStockHandler)
		r.HandleFunc("DELETE /stocks/{symbol}", s.deleteStockHandler)

		r.HandleFunc("GET /homepage", s.homepageHandler)
		r.HandleFunc("GET /homepage/metadata", s.homepageMetadataHandler)

		r.HandleFunc("POST /auth/register", s.registerHandler)
		r.HandleFunc("POST /auth/login", s.loginHandler)
		r.Group().Route(func(user *routegroup.Bundle) {
			user.Use(s.authMiddleware(false))
			user.HandleFunc("GET /auth/profile", s.getProfileHandler)
			user.HandleFunc("PUT /auth/profile", s.updateProfileHandler)
		})

		r.Group().Route(func(admin *routegroup.Bundle) {
			admin.Use(s.authMiddleware(true))
			admin.HandleFunc("GET /admin/db", s.adminPageHandler)
			admin.HandleFunc("GET /admin/db/stats", s.adminStatsHandler)
			admin.HandleFunc("GET /admin/db/tables", s.adminTablesHandler)
			admin.HandleFunc("GET /admin/db/tables/{table}", s.adminTableHandler)
		})
	})

	// RSS routes
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}

// healthHandler reports service and storage state
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "healthy",
		"version": s.opts.Version,
		"time":    time.Now().UTC(),
	}
	if err := s.stores.Health.Ping(r.Context()); err != nil {
		log.Printf("[WARN] health check failed: %v", err)
		status["status"] = "unhealthy"
		renderJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}
