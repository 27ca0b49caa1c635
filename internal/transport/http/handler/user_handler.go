package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
)

// UserHandler serves the admin-gated user CRUD.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=60"`
	Password string `json:"password" binding:"required,min=8,max=15"`
	Role     string `json:"role" binding:"required,oneof=admin member guest"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var in createUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	user, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		Email:    in.Email,
		Password: in.Password,
		Role:     domain.Role(in.Role),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type userListFilter struct {
	Role string `form:"role" binding:"omitempty,oneof=admin member guest"`
}

func (h *UserHandler) GetByQuery(c *gin.Context) {
	var f userListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	q, err := bindQuery(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	page, err := h.users.GetByQuery(c.Request.Context(), domain.UserFilter{Role: domain.Role(f.Role)}, q)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uintParam(c, "userId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=60"`
	Password *string `json:"password" binding:"omitempty,min=8,max=15"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin member guest"`
}

func (h *UserHandler) UpdateByID(c *gin.Context) {
	id, err := uintParam(c, "userId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var in updateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	upd := service.UpdateUserInput{Email: in.Email, Password: in.Password}
	if in.Role != nil {
		role := domain.Role(*in.Role)
		upd.Role = &role
	}
	user, err := h.users.UpdateByID(c.Request.Context(), id, upd)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteByID(c *gin.Context) {
	id, err := uintParam(c, "userId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	user, err := h.users.DeleteByID(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
