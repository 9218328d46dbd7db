package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// TagHandler handles tag-related HTTP requests.
type TagHandler struct {
	tagService services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTagsRequest is the payload for batch tag creation.
type CreateTagsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// ListTags serves all tags with published-post counts.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Tags fetched successfully.", tags)
}

// CreateTags upserts a batch of tag names.
func (h *TagHandler) CreateTags(c *gin.Context) {
	var req CreateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	tags, err := h.tagService.CreateBatch(c.Request.Context(), req.Names)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "Tags created successfully.", tags)
}

// DeleteTag removes a tag.
func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccessResponse(c, http.StatusOK, "Tag deleted successfully.", nil)
}
