package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/http/middleware"
	"tarefas_webapp/internal/repository"
	"tarefas_webapp/internal/service"
	"tarefas_webapp/internal/session"

	"github.com/gin-gonic/gin"
)

// testToday is the fixed clock used by handler tests.
var testToday = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// --- fakes -------------------------------------------------------------

type fakeUserStore struct {
	users              map[int64]*domain.User
	nextID             int64
	lastUpdatePassword bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*domain.User)}
}

func (f *fakeUserStore) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUserStore) Search(_ context.Context, term string) ([]domain.User, error) {
	all, _ := f.List(context.Background())
	out := make([]domain.User, 0)
	for _, u := range all {
		if strings.Contains(u.Name, term) || strings.Contains(u.Email, term) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = testToday
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, u *domain.User, withPassword bool) error {
	f.lastUpdatePassword = withPassword
	stored, ok := f.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = u.Name
	stored.Email = u.Email
	stored.Address = u.Address
	stored.City = u.City
	stored.Phone = u.Phone
	if withPassword {
		stored.PasswordHash = u.PasswordHash
	}
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCategoryStore struct {
	cats   map[int64]*domain.Category
	nextID int64
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{cats: make(map[int64]*domain.Category)}
}

func (f *fakeCategoryStore) List(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryStore) Insert(_ context.Context, c *domain.Category) error {
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.cats[c.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) Update(_ context.Context, c *domain.Category) error {
	if _, ok := f.cats[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	f.cats[c.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.cats[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.cats, id)
	return nil
}

type fakeProjectStore struct {
	projects   map[int64]*domain.Project
	nextID     int64
	lastListID int64
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[int64]*domain.Project)}
}

func (f *fakeProjectStore) ListByUser(_ context.Context, userID int64) ([]domain.Project, error) {
	f.lastListID = userID
	out := make([]domain.Project, 0)
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProjectStore) BelongsToUser(_ context.Context, projectID, userID int64) (bool, error) {
	p, ok := f.projects[projectID]
	return ok && p.UserID == userID, nil
}

func (f *fakeProjectStore) Insert(_ context.Context, p *domain.Project) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = testToday
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeProjectStore) Update(_ context.Context, p *domain.Project) error {
	stored, ok := f.projects[p.ID]
	if !ok || stored.UserID != p.UserID {
		return repository.ErrNotFound
	}
	stored.Name = p.Name
	stored.Description = p.Description
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id, userID int64) error {
	stored, ok := f.projects[id]
	if !ok || stored.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeTaskStore struct {
	tasks    map[int64]*domain.Task
	owners   *fakeProjectStore
	nextID   int64
	lastSave *domain.Task
}

func newFakeTaskStore(owners *fakeProjectStore) *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]*domain.Task), owners: owners}
}

func (f *fakeTaskStore) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	out := make([]domain.Task, 0)
	for _, t := range f.tasks {
		if ok, _ := f.owners.BelongsToUser(ctx, t.ProjectID, userID); ok {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

func (f *fakeTaskStore) Insert(_ context.Context, t *domain.Task) error {
	f.nextID++
	t.ID = f.nextID
	cp := *t
	f.tasks[t.ID] = &cp
	f.lastSave = &cp
	return nil
}

func (f *fakeTaskStore) Update(ctx context.Context, t *domain.Task, userID int64) error {
	stored, ok := f.tasks[t.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if owned, _ := f.owners.BelongsToUser(ctx, stored.ProjectID, userID); !owned {
		return repository.ErrNotFound
	}
	cp := *t
	f.tasks[t.ID] = &cp
	f.lastSave = &cp
	return nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id, userID int64) error {
	stored, ok := f.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	if owned, _ := f.owners.BelongsToUser(ctx, stored.ProjectID, userID); !owned {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

// --- test environment --------------------------------------------------

type testEnv struct {
	handler    *Handler
	router     *gin.Engine
	users      *fakeUserStore
	categories *fakeCategoryStore
	projects   *fakeProjectStore
	tasks      *fakeTaskStore
	sessions   *session.MemoryStore
}

func newTestEnv(t *testing.T, cfg HandlerConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUserStore()
	categories := newFakeCategoryStore()
	projects := newFakeProjectStore()
	tasks := newFakeTaskStore(projects)
	sessions := session.NewMemoryStore()

	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = time.Hour
	}
	h := NewHandler(users, categories, projects, tasks, sessions, cfg)
	h.now = func() time.Time { return testToday }

	r := gin.New()
	r.Use(middleware.Session(sessions, CookieName))

	api := r.Group("/api")
	api.POST("/cadastro", h.Register)
	api.GET("/login", h.CheckSession)
	api.POST("/login", h.LoginOrLogout)
	api.GET("/usuarios", h.ListUsers)
	api.POST("/usuarios", branch(h.SaveUser, h.DeleteUser))
	api.GET("/categorias", h.ListCategories)
	api.POST("/categorias", branch(h.SaveCategory, h.DeleteCategory))
	api.GET("/projetos", h.ListProjects)
	api.POST("/projetos", branch(h.SaveProject, h.DeleteProject))
	api.GET("/tarefas", h.ListTasks)
	api.POST("/tarefas", branch(h.SaveTask, h.DeleteTask))

	return &testEnv{
		handler:    h,
		router:     r,
		users:      users,
		categories: categories,
		projects:   projects,
		tasks:      tasks,
		sessions:   sessions,
	}
}

func branch(save, del gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("acao") == "excluir" {
			del(c)
			return
		}
		save(c)
	}
}

// seedUser registers a user directly in the fake store.
func (e *testEnv) seedUser(t *testing.T, name, email, password string) *domain.User {
	t.Helper()
	hash, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{Name: name, Email: email, PasswordHash: hash, Address: "Rua A", City: "Recife", Phone: "99999"}
	if err := e.users.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// login creates a session for the user and returns the cookie.
func (e *testEnv) login(t *testing.T, u *domain.User) *http.Cookie {
	t.Helper()
	sid, err := e.sessions.Create(context.Background(), session.Identity{UserID: u.ID, Name: u.Name, Email: u.Email})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: CookieName, Value: sid}
}

func (e *testEnv) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("decode list response %q: %v", w.Body.String(), err)
	}
	return l
}
