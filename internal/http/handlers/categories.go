package handlers

import (
	"net/http"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/validation"

	"github.com/gin-gonic/gin"
)

// Categories are global: no ownership scoping applies to this entity.

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}
	c.JSON(http.StatusOK, cats)
}

type categoryRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Color string `json:"cor"`
}

func (h *Handler) SaveCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}

	if err := validation.Required(req.Name, "Nome é obrigatório"); err != nil {
		fail(c, err)
		return
	}
	if req.Color == "" {
		req.Color = domain.DefaultCategoryColor
	}

	ctx := c.Request.Context()
	cat := &domain.Category{ID: req.ID, Name: req.Name, Color: req.Color}

	if req.ID != 0 {
		if err := h.Categories.Update(ctx, cat); err != nil {
			fail(c, err)
			return
		}
	} else {
		if err := h.Categories.Insert(ctx, cat); err != nil {
			fail(c, apperr.Store(err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "id": cat.ID})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := validation.ID(c.Query("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true})
}
