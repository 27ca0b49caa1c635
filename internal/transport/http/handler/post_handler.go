package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
)

// PostHandler serves posts and the comments nested under them.
type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func identity(c *gin.Context) (domain.Identity, bool) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		middleware.Fail(c, domain.ErrUnauthorized("Invalid token."))
	}
	return ident, ok
}

type createPostRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=100"`
	Contents  string `json:"contents" binding:"required"`
	Published *bool  `json:"published"`
}

func (h *PostHandler) Create(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	var in createPostRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	post, err := h.posts.Create(c.Request.Context(), ident, service.CreatePostInput{
		Title:     in.Title,
		Contents:  in.Contents,
		Published: in.Published,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

type postListFilter struct {
	AuthorID  uint  `form:"authorId"`
	Published *bool `form:"published"`
}

func (h *PostHandler) GetByQuery(c *gin.Context) {
	var f postListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	q, err := bindQuery(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	page, err := h.posts.GetByQuery(c.Request.Context(), domain.PostFilter{
		AuthorID:  f.AuthorID,
		Published: f.Published,
	}, q)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

type updatePostRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=100"`
	Contents  *string `json:"contents"`
	Published *bool   `json:"published"`
}

func (h *PostHandler) UpdateByID(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var in updatePostRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	post, err := h.posts.UpdateByID(c.Request.Context(), ident, id, service.UpdatePostInput{
		Title:     in.Title,
		Contents:  in.Contents,
		Published: in.Published,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeleteByID(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	post, err := h.posts.DeleteByID(c.Request.Context(), ident, id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// --- comments nested under a post ---

type createCommentRequest struct {
	Contents  string `json:"contents" binding:"required"`
	Published *bool  `json:"published"`
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	postID, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var in createCommentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	comment, err := h.posts.CreateComment(c.Request.Context(), ident, postID, service.CreateCommentInput{
		Contents:  in.Contents,
		Published: in.Published,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type commentListFilter struct {
	AuthorID  uint  `form:"authorId"`
	Published *bool `form:"published"`
}

func (h *PostHandler) GetCommentsByQuery(c *gin.Context) {
	postID, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var f commentListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	q, err := bindQuery(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	page, err := h.posts.GetCommentsByQuery(c.Request.Context(), postID, domain.CommentFilter{
		AuthorID:  f.AuthorID,
		Published: f.Published,
	}, q)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PostHandler) GetCommentByID(c *gin.Context) {
	postID, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	commentID, err := uintParam(c, "commentId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	comment, err := h.posts.GetCommentByID(c.Request.Context(), postID, commentID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

type updateCommentRequest struct {
	Contents  *string `json:"contents"`
	Published *bool   `json:"published"`
}

func (h *PostHandler) UpdateCommentByID(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	postID, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	commentID, err := uintParam(c, "commentId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var in updateCommentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, domain.ErrBadRequest(err.Error()))
		return
	}
	comment, err := h.posts.UpdateCommentByID(c.Request.Context(), ident, postID, commentID, service.UpdateCommentInput{
		Contents:  in.Contents,
		Published: in.Published,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) DeleteCommentByID(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	postID, err := uintParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	commentID, err := uintParam(c, "commentId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	comment, err := h.posts.DeleteCommentByID(c.Request.Context(), ident, postID, commentID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
