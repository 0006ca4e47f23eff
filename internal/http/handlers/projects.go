package handlers

import (
	"net/http"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListProjects returns the session user's projects, name-ascending.
func (h *Handler) ListProjects(c *gin.Context) {
	userID, ok := h.scopeUserID(c)
	if !ok {
		failUnauthenticated(c)
		return
	}

	projects, err := h.Projects.ListByUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	out := make([]gin.H, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		out = append(out, gin.H{
			"id":                      p.ID,
			"nome":                    p.Name,
			"descricao":               p.Description,
			"data_criacao":            p.CreatedAt,
			"data_criacao_formatada":  p.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
	c.JSON(http.StatusOK, out)
}

type projectRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// SaveProject inserts or updates within the session user's scope. An
// update that matches no owned row fails as not found.
func (h *Handler) SaveProject(c *gin.Context) {
	userID, ok := h.scopeUserID(c)
	if !ok {
		failUnauthenticated(c)
		return
	}

	var req projectRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}
	if err := validation.Required(req.Name, "Nome do projeto é obrigatório"); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	p := &domain.Project{ID: req.ID, Name: req.Name, Description: req.Description, UserID: userID}

	if req.ID != 0 {
		if err := h.Projects.Update(ctx, p); err != nil {
			fail(c, err)
			return
		}
	} else {
		if err := h.Projects.Insert(ctx, p); err != nil {
			fail(c, apperr.Store(err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "id": p.ID})
}

// DeleteProject removes an owned project together with its tasks.
func (h *Handler) DeleteProject(c *gin.Context) {
	userID, ok := h.scopeUserID(c)
	if !ok {
		failUnauthenticated(c)
		return
	}

	id, err := validation.ID(c.Query("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.Projects.Delete(c.Request.Context(), id, userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true})
}
