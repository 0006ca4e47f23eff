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

type registerRequest struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	Password        string `json:"senha"`
	ConfirmPassword string `json:"confirmar_senha"`
	Birthdate       string `json:"data_nasc"`
}

// Register creates a new account. Validation short-circuits on the
// first failing rule; nothing is written before every rule passes.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if err := validation.Name(name); err != nil {
		fail(c, err)
		return
	}
	if err := validation.Email(email); err != nil {
		fail(c, err)
		return
	}
	if _, err := validation.Birthdate(req.Birthdate, h.now()); err != nil {
		fail(c, err)
		return
	}
	if err := validation.Password(req.Password, req.ConfirmPassword); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()

	taken, err := h.Users.EmailExists(ctx, email, 0)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}
	if taken {
		fail(c, apperr.New(apperr.Conflict, "Este email já está cadastrado"))
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	u := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := h.Users.Insert(ctx, u); err != nil {
		fail(c, apperr.Store(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Cadastro realizado com sucesso! Faça login para continuar.",
		"id":       u.ID,
	})
}
