package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/middleware"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/auth"
)

type AuthHandler struct {
	register *auth.RegisterUseCase
	login    *auth.LoginUseCase
	users    auth.UserRepository
}

func NewAuthHandler(
	register *auth.RegisterUseCase,
	login *auth.LoginUseCase,
	users auth.UserRepository,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, users: users}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in auth.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	user, err := h.register.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in auth.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	out, err := h.login.Execute(c.Request.Context(), in)
	if err != nil {
		if httperr.IsBusiness(err, "unauthorized") {
			httperr.Unauthorized(c, "unauthorized", "invalid credentials")
			return
		}
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "missing caller identity")
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, user)
}
