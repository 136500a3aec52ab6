package handlers

import (
	"errors"
	"net/http"
	"parley/internal/services"
	"parley/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
	cache    *utils.Cache
}

func NewCommentHandler(comments *services.CommentService, cache *utils.Cache) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		cache:    cache,
	}
}

type createCommentRequest struct {
	Body     string `json:"body" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	discussionID, ok := pathID(c, "discussion")
	if !ok {
		return
	}
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, "body is required")
		return
	}

	comment, err := h.comments.Create(discussionID, authorID, req.Body, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthorNotFound):
			jsonError(c, http.StatusNotFound, "Author not found")
		case errors.Is(err, services.ErrDiscussionNotFound):
			jsonError(c, http.StatusNotFound, "Discussion not found")
		case errors.Is(err, services.ErrParentNotFound):
			jsonError(c, http.StatusNotFound, "Parent comment not found")
		case errors.Is(err, services.ErrParentMismatch):
			jsonError(c, http.StatusUnprocessableEntity, "Parent comment belongs to a different discussion")
		default:
			jsonError(c, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}

	h.cache.Delete(detailCacheKey(discussionID))

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) List(c *gin.Context) {
	discussionID, ok := pathID(c, "discussion")
	if !ok {
		return
	}

	comments, err := h.comments.List(discussionID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "comment")
	if !ok {
		return
	}
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	var upd services.CommentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, "malformed update payload")
		return
	}

	comment, err := h.comments.Update(id, authorID, upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			jsonError(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, services.ErrUnauthorized):
			jsonError(c, http.StatusForbidden, "Unauthorized")
		default:
			jsonError(c, http.StatusInternalServerError, "failed to update comment")
		}
		return
	}

	h.cache.Delete(detailCacheKey(comment.DiscussionID))

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "comment")
	if !ok {
		return
	}
	authorID, ok := actingAuthor(c)
	if !ok {
		return
	}

	comment, err := h.comments.SoftDelete(id, authorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			jsonError(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, services.ErrUnauthorized):
			jsonError(c, http.StatusForbidden, "Unauthorized")
		default:
			jsonError(c, http.StatusInternalServerError, "failed to delete comment")
		}
		return
	}

	h.cache.Delete(detailCacheKey(comment.DiscussionID))

	c.JSON(http.StatusOK, gin.H{"message": "Comment marked as deleted"})
}
