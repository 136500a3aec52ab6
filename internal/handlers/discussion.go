package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"parley/internal/models"
	"parley/internal/services"
	"parley/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DiscussionHandler struct {
	discussions *services.DiscussionService
	comments    *services.CommentService
	cache       *utils.Cache
}

func NewDiscussionHandler(discussions *services.DiscussionService, comments *services.CommentService, cache *utils.Cache) *DiscussionHandler {
	return &DiscussionHandler{
		discussions: discussions,
		comments:    comments,
		cache:       cache,
	}
}

func detailCacheKey(id uint) string {
	return fmt.Sprintf("discussion:detail:%d", id)
}

type createDiscussionRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

func (h *DiscussionHandler) Create(c *gin.Context) {
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	var req createDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, "title and body are required")
		return
	}

	discussion, err := h.discussions.Create(req.Title, req.Body, authorID)
	if err != nil {
		if errors.Is(err, services.ErrAuthorNotFound) {
			jsonError(c, http.StatusNotFound, "Author not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "failed to create discussion")
		return
	}

	c.JSON(http.StatusOK, discussion)
}

func (h *DiscussionHandler) List(c *gin.Context) {
	discussions, err := h.discussions.List()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to list discussions")
		return
	}
	c.JSON(http.StatusOK, discussions)
}

// Detail returns one discussion with its comments, bodies rendered to
// sanitized HTML. Responses are served from the cache until a mutation on
// the discussion or its comments invalidates the entry.
func (h *DiscussionHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "discussion")
	if !ok {
		return
	}

	cacheKey := detailCacheKey(id)
	if cached := h.cache.Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	discussion, err := h.discussions.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrDiscussionNotFound) {
			jsonError(c, http.StatusNotFound, "Discussion not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "failed to load discussion")
		return
	}

	comments, err := h.comments.List(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	type renderedDiscussion struct {
		models.Discussion
		BodyHTML string `json:"body_html"`
	}
	type renderedComment struct {
		models.Comment
		BodyHTML string `json:"body_html"`
	}

	rendered := make([]renderedComment, len(comments))
	for i, comment := range comments {
		rendered[i] = renderedComment{
			Comment:  comment,
			BodyHTML: utils.RenderMarkdown(comment.Body),
		}
	}

	payload := gin.H{
		"discussion": renderedDiscussion{
			Discussion: *discussion,
			BodyHTML:   utils.RenderMarkdown(discussion.Body),
		},
		"comments": rendered,
	}

	h.cache.Set(cacheKey, payload, 5*time.Minute)

	c.JSON(http.StatusOK, payload)
}

func (h *DiscussionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "discussion")
	if !ok {
		return
	}
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	var upd services.DiscussionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, "malformed update payload")
		return
	}

	discussion, err := h.discussions.Update(id, authorID, upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiscussionNotFound):
			jsonError(c, http.StatusNotFound, "Discussion not found")
		case errors.Is(err, services.ErrUnauthorized):
			jsonError(c, http.StatusForbidden, "Unauthorized")
		default:
			jsonError(c, http.StatusInternalServerError, "failed to update discussion")
		}
		return
	}

	h.cache.Delete(detailCacheKey(id))

	c.JSON(http.StatusOK, discussion)
}

func (h *DiscussionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "discussion")
	if !ok {
		return
	}
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	if err := h.discussions.SoftDelete(id, authorID); err != nil {
		switch {
		case errors.Is(err, services.ErrDiscussionNotFound):
			jsonError(c, http.StatusNotFound, "Discussion not found")
		case errors.Is(err, services.ErrUnauthorized):
			jsonError(c, http.StatusForbidden, "Unauthorized")
		default:
			jsonError(c, http.StatusInternalServerError, "failed to delete discussion")
		}
		return
	}

	h.cache.Delete(detailCacheKey(id))

	c.JSON(http.StatusOK, gin.H{"message": "Discussion marked as deleted"})
}
