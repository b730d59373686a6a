package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-cms/backend/common"
	"portfolio-cms/backend/model"
	"portfolio-cms/backend/service"
	"portfolio-cms/backend/store"
)

var validate = validator.New()

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	Users *store.UserStore
}

func NewAuthHandler(users *store.UserStore) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Login exchanges a username/password pair for a bearer token. The response
// mirrors what the admin SPA expects: the token plus a password-free user
// summary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := service.Authenticate(h.Users, req.Username, req.Password)
	if err != nil {
		common.RespError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := service.GenerateToken(user)
	if err != nil {
		common.SysError("generating token: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Cleaned(),
	})
}
