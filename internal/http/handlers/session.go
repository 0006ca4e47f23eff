package handlers

import (
	"errors"
	"net/http"

	"tarefas_webapp/internal/apperr"
	"tarefas_webapp/internal/repository"
	"tarefas_webapp/internal/service"
	"tarefas_webapp/internal/session"
	"tarefas_webapp/internal/validation"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the opaque session id.
const CookieName = "sessao_id"

type loginRequest struct {
	Action   string `json:"acao"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// CheckSession reports whether the request carries a live session.
// Absence is not an error.
func (h *Handler) CheckSession(c *gin.Context) {
	ident, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"logado": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logado": true, "usuario": ident})
}

// LoginOrLogout handles the session POST endpoint: a body with
// acao=logout destroys the session, anything else is a login attempt.
func (h *Handler) LoginOrLogout(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.InvalidFormat, "Requisição inválida"))
		return
	}

	if req.Action == "logout" {
		h.logout(c)
		return
	}

	if req.Email == "" || req.Password == "" {
		fail(c, apperr.New(apperr.MissingField, "Email e senha são obrigatórios"))
		return
	}
	if err := validation.Email(req.Email); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		fail(c, apperr.New(apperr.NotFound, "Usuário não encontrado"))
		return
	}
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	if !service.CheckPassword(user.PasswordHash, req.Password) {
		fail(c, apperr.New(apperr.Unauthorized, "Senha incorreta"))
		return
	}

	ident := session.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}
	sid, err := h.Sessions.Create(ctx, ident)
	if err != nil {
		fail(c, apperr.Store(err))
		return
	}

	c.SetCookie(CookieName, sid, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Login realizado com sucesso",
		"usuario":  ident,
	})
}

// logout destroys the session unconditionally; it succeeds even when
// there was no session to destroy.
func (h *Handler) logout(c *gin.Context) {
	if sid, ok := c.Get("session_id"); ok {
		if id, ok := sid.(string); ok && id != "" {
			_ = h.Sessions.Destroy(c.Request.Context(), id)
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"sucesso": true, "mensagem": "Logout realizado com sucesso"})
}
