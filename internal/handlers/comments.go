package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/auth"
	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateCommentRequest is the payload for creating a comment.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListComments serves a post's comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Comments fetched successfully.", comments)
}

// CreateComment adds a comment to a post for the authenticated user.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	userID := c.GetString(auth.ContextUserIDKey)
	comment, err := h.commentService.Create(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "Comment created successfully.", comment)
}

// DeleteComment removes the authenticated user's own comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString(auth.ContextUserIDKey)

	if err := h.commentService.Delete(c.Request.Context(), c.Param("commentId"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Comment deleted successfully.", nil)
}
