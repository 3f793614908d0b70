package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/devconnect/internal/services"
	"github.com/yoockh/devconnect/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, "AuthHandler.Register", &req) {
		return
	}

	tok, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: tok})
}

// Login handles POST /api/auth. Bad credentials answer 400 like validation errors.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if !bindJSON(c, "AuthHandler.Login", &req) {
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		status := 0
		if utils.IsCode(err, utils.CodeUnauthorized) {
			status = http.StatusBadRequest
		}
		writeErrorStatus(c, status, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: tok})
}

// Me handles GET /api/auth.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	u, err := h.svc.WhoAmI(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
