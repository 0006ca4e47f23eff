package handlers

import (
	"net/http"
	"time"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/service"
	"tarefas_webapp/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListTasks returns the session user's tasks decorated with the
// derived due-date fields, or with ?tipo=projetos the project list
// for the task form's picker.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := h.scopeUserID(c)
	if !ok {
		failUnauthenticated(c)
		return
	}

	ctx := c.Request.Context()

	if c.Query("tipo") == "projetos" {
		projects, err := h.Projects.ListByUser(ctx, userID)
		if err != nil {
			fail(c, apperr.Store(err))
			return
		}
		out := make([]gin.H, 0, len(projects))
		for i := range projects {
			out = append(out, gin.H{"id": projects[i].ID, "nome": projects[i].Name})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	tasks, err := h.Tasks.ListByUser(ctx, userID)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	today := h.now()
	out := make([]gin.H, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		d := service.ComputeDeadline(t.DueDate, today)

		var dueDate any
		if t.DueDate != nil {
			dueDate = t.DueDate.Format("2006-01-02")
		}
		out = append(out, gin.H{
			"id":                    t.ID,
			"titulo":                t.Title,
			"descricao":             t.Description,
			"projeto_id":            t.ProjectID,
			"nome_projeto":          t.ProjectName,
			"status":                t.Status,
			"data_limite":           dueDate,
			"data_limite_formatada": d.Formatted,
			"dias_restantes":        d.DaysRemaining,
			"vencida":               d.Overdue,
			"proxima":               d.DueSoon,
		})
	}
	c.JSON(http.StatusOK, out)
}

type taskRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	ProjectID   int64  `json:"projeto_id"`
	DueDate     string `json:"data_limite"`
	Status      string `json:"status"`
}

// SaveTask inserts or updates a task. The target project must belong
// to the session user, which keeps task ownership transitive.
func (h *Handler) SaveTask(c *gin.Context) {
	userID, ok := h.scopeUserID(c)
	if !ok {
		failUnauthenticated(c)
		return
	}

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}

	if err := validation.Required(req.Title, "Título da tarefa é obrigatório"); err != nil {
		fail(c, err)
		return
	}
	if req.ProjectID == 0 {
		fail(c, apperr.New(apperr.MissingField, "Selecione um projeto"))
		return
	}

	status, ok := domain.ParseTaskStatus(req.Status)
	if !ok {
		fail(c, apperr.New(apperr.InvalidFormat, "Status inválido"))
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			fail(c, apperr.New(apperr.InvalidFormat, "Data limite inválida"))
			return
		}
		dueDate = &d
	}

	ctx := c.Request.Context()

	owned, err := h.Projects.BelongsToUser(ctx, req.ProjectID, userID)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}
	if !owned {
		fail(c, apperr.New(apperr.NotFound, "Projeto não encontrado"))
		return
	}

	t := &domain.Task{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		DueDate:     dueDate,
		Status:      status,
	}

	if req.ID != 0 {
		if err := h.Tasks.Update(ctx, t, userID); err != nil {
			fail(c, err)
			return
		}
	} else {
		if err := h.Tasks.Insert(ctx, t); err != nil {
			fail(c, apperr.Store(err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "id": t.ID})
}

// DeleteTask removes a task within the session user's scope.
func (h *Handler) DeleteTask(c *gin.Context) {
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

	if err := h.Tasks.Delete(c.Request.Context(), id, userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true})
}
