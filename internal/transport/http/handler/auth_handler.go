package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=60"`
	Password string `json:"password" binding:"required,min=8,max=15"`
	Role     string `json:"role" binding:"required,oneof=admin member guest"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var in signUpRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	res, err := h.auth.SignUp(c.Request.Context(), service.CreateUserInput{
		Email:    in.Email,
		Password: in.Password,
		Role:     domain.Role(in.Role),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var in signInRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	res, err := h.auth.SignIn(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

type verifyPasswordRequest struct {
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		middleware.Fail(c, domain.ErrUnauthorized("Invalid token."))
		return
	}
	var in verifyPasswordRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	res, err := h.auth.VerifyPassword(c.Request.Context(), ident.UserID, in.ConfirmPassword)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Me(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		middleware.Fail(c, domain.ErrUnauthorized("Invalid token."))
		return
	}
	user, err := h.auth.Me(c.Request.Context(), ident.UserID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
