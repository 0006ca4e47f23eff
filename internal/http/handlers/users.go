package handlers

import (
	"net/http"
	"strings"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/service"
	"tarefas_webapp/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListUsers returns every user, name-ascending, or the subset matching
// the ?pesquisa= substring on name/email. Password hashes never leave
// the server.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		users []domain.User
		err   error
	)
	if term := c.Query("pesquisa"); term != "" {
		users, err = h.Users.Search(ctx, term)
	} else {
		users, err = h.Users.List(ctx)
	}
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, gin.H{
			"id":                       u.ID,
			"nome":                     u.Name,
			"email":                    u.Email,
			"endereco":                 u.Address,
			"cidade":                   u.City,
			"telefone":                 u.Phone,
			"data_cadastro":            u.CreatedAt,
			"data_cadastro_formatada":  u.CreatedAt.Format("02/01/2006 15:04"),
			"endereco_completo":        u.FullAddress(),
		})
	}
	c.JSON(http.StatusOK, out)
}

type userRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Address  string `json:"endereco"`
	City     string `json:"cidade"`
	Phone    string `json:"telefone"`
}

// SaveUser inserts when the body has no id, otherwise updates. On
// update an empty senha keeps the stored password.
func (h *Handler) SaveUser(c *gin.Context) {
	var req userRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	checks := []error{
		validation.Required(req.Name, "Nome é obrigatório"),
		validation.Email(req.Email),
		validation.Required(req.Address, "Endereço é obrigatório"),
		validation.Required(req.City, "Cidade é obrigatória"),
		validation.Required(req.Phone, "Telefone é obrigatório"),
	}
	for _, err := range checks {
		if err != nil {
			fail(c, err)
			return
		}
	}

	ctx := c.Request.Context()

	taken, err := h.Users.EmailExists(ctx, req.Email, req.ID)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}
	if taken {
		fail(c, apperr.New(apperr.Conflict, "Este email já está cadastrado"))
		return
	}

	u := &domain.User{
		ID:      req.ID,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}

	if req.ID != 0 {
		withPassword := req.Password != ""
		if withPassword {
			hash, err := service.HashPassword(req.Password)
			if err != nil {
				fail(c, apperr.Store(err))
				return
			}
			u.PasswordHash = hash
		}
		if err := h.Users.Update(ctx, u, withPassword); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sucesso": true, "id": u.ID})
		return
	}

	if req.Password == "" {
		fail(c, apperr.New(apperr.MissingField, "Senha é obrigatória para novo usuário"))
		return
	}
	hash, err := service.HashPassword(req.Password)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}
	u.PasswordHash = hash

	if err := h.Users.Insert(ctx, u); err != nil {
		fail(c, apperr.Store(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "id": u.ID})
}

// DeleteUser removes a user by the ?id= query parameter. Deleting the
// user who owns the current session is refused.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := validation.ID(c.Query("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if ident, ok := currentUser(c); ok && ident.UserID == id {
		fail(c, apperr.New(apperr.Unauthorized, "Você não pode excluir seu próprio usuário"))
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sucesso": true})
}
