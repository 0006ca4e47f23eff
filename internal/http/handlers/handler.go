package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/repository"
	"tarefas_webapp/internal/session"

	"github.com/gin-gonic/gin"
)

// Store interfaces are declared where they are consumed so handlers
// can be exercised against fakes. *repository.XxxRepository satisfy
// them.

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, term string) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Insert(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User, withPassword bool) error
	Delete(ctx context.Context, id int64) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type ProjectStore interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	BelongsToUser(ctx context.Context, projectID, userID int64) (bool, error)
	Insert(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id, userID int64) error
}

type TaskStore interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Insert(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}

// HandlerConfig carries the request-level knobs from the app config.
type HandlerConfig struct {
	SessionTTL time.Duration
	DevMode    bool
	DevUserID  int64
}

type Handler struct {
	Users      UserStore
	Categories CategoryStore
	Projects   ProjectStore
	Tasks      TaskStore
	Sessions   session.Store

	cfg HandlerConfig
	now func() time.Time
}

func NewHandler(users UserStore, categories CategoryStore, projects ProjectStore, tasks TaskStore, sessions session.Store, cfg HandlerConfig) *Handler {
	if cfg.DevUserID == 0 {
		cfg.DevUserID = 1
	}
	return &Handler{
		Users:      users,
		Categories: categories,
		Projects:   projects,
		Tasks:      tasks,
		Sessions:   sessions,
		cfg:        cfg,
		now:        time.Now,
	}
}

// currentUser reads the identity the session middleware put on the
// context, if any.
func currentUser(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get("identity")
	if !ok {
		return session.Identity{}, false
	}
	ident, ok := v.(session.Identity)
	return ident, ok
}

// scopeUserID resolves the user id that owner-scoped listings and
// writes run under. Without a session it falls back to the configured
// development user when DevMode is on, otherwise the request is
// unauthenticated.
func (h *Handler) scopeUserID(c *gin.Context) (int64, bool) {
	if ident, ok := currentUser(c); ok {
		return ident.UserID, true
	}
	if h.cfg.DevMode {
		return h.cfg.DevUserID, true
	}
	return 0, false
}

// fail writes the failure envelope, mapping the error's kind to a
// status code. Errors outside the taxonomy surface verbatim as store
// failures.
func fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		err = apperr.New(apperr.NotFound, "Registro não encontrado")
	}
	kind := apperr.KindOf(err)
	c.JSON(apperr.HTTPStatus(kind), gin.H{"sucesso": false, "erro": err.Error()})
}

func failUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "erro": "Usuário não autenticado"})
}
