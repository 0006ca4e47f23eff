package http

import (
	"tarefas_webapp/internal/config"
	"tarefas_webapp/internal/http/handlers"
	"tarefas_webapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the API surface. Each resource is one path
// routed by HTTP method; deletes are the POST variant carrying
// ?acao=excluir, matching the clients this API serves.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, db *pgxpool.Pool, cfg *config.Config, version string) {
	health := handlers.NewHealthHandler(db, version)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)

	r.Use(middleware.Metrics())
	r.Use(middleware.Session(h.Sessions, handlers.CookieName))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	api.POST("/cadastro", h.Register)

	api.GET("/login", h.CheckSession)
	api.POST("/login", h.LoginOrLogout)

	api.GET("/usuarios", h.ListUsers)
	api.POST("/usuarios", deleteAware(h.SaveUser, h.DeleteUser))

	api.GET("/categorias", h.ListCategories)
	api.POST("/categorias", deleteAware(h.SaveCategory, h.DeleteCategory))

	api.GET("/projetos", h.ListProjects)
	api.POST("/projetos", deleteAware(h.SaveProject, h.DeleteProject))

	api.GET("/tarefas", h.ListTasks)
	api.POST("/tarefas", deleteAware(h.SaveTask, h.DeleteTask))
}

// deleteAware branches a resource's POST endpoint on the delete-action
// query flag.
func deleteAware(save, del gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("acao") == "excluir" {
			del(c)
			return
		}
		save(c)
	}
}
