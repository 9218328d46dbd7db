package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/auth"
	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts serves the public cursor-paginated feed of published posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	pageSize := 5
	if raw := c.Query("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.SendErrorResponse(c, http.StatusBadRequest, "pageSize must be an integer")
			return
		}
		pageSize = parsed
	}

	var cursor, categoryID *string
	if raw := c.Query("cursor"); raw != "" {
		cursor = &raw
	}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID = &raw
	}

	page, err := h.postService.ListPosts(c.Request.Context(), pageSize, cursor, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Posts fetched successfully.", page)
}

// GetPost serves one post by id.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Post fetched successfully.", post)
}

// GetDrafts serves the authenticated author's draft posts.
func (h *PostHandler) GetDrafts(c *gin.Context) {
	userID := c.GetString(auth.ContextUserIDKey)

	drafts, err := h.postService.GetDrafts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Draft posts fetched successfully.", drafts)
}

// GetFeatured serves the featured posts strip.
func (h *PostHandler) GetFeatured(c *gin.Context) {
	posts, err := h.postService.GetFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Featured posts fetched successfully.", posts)
}

// GetTrending serves the trending posts strip.
func (h *PostHandler) GetTrending(c *gin.Context) {
	posts, err := h.postService.GetTrending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Trending posts fetched successfully.", posts)
}

// CreatePost creates a post for the authenticated author.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	userID := c.GetString(auth.ContextUserIDKey)
	post, err := h.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "Post created successfully.", post)
}

// UpdatePost updates one of the authenticated author's posts.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req services.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	userID := c.GetString(auth.ContextUserIDKey)
	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Post updated successfully.", post)
}

// DeletePost deletes one of the authenticated author's posts.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString(auth.ContextUserIDKey)

	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Post deleted successfully.", nil)
}
