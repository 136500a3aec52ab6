package services

import (
	"errors"
	"parley/internal/models"
	"time"

	"gorm.io/gorm"
)

// CommentUpdate enumerates the mutable fields of a comment. A nil field is
// left untouched.
type CommentUpdate struct {
	Body *string `json:"body"`
}

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create verifies the author, the discussion and (when replying) the parent
// comment before inserting. A parent must live in the same discussion.
func (s *CommentService) Create(discussionID, authorID uint, body string, parentID *uint) (*models.Comment, error) {
	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	var discussion models.Discussion
	if err := s.db.First(&discussion, discussionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscussionNotFound
		}
		return nil, err
	}

	if parentID != nil {
		var parent models.Comment
		if err := s.db.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.DiscussionID != discussionID {
			return nil, ErrParentMismatch
		}
	}

	comment := models.Comment{
		Body:         body,
		AuthorID:     authorID,
		DiscussionID: discussionID,
		ParentID:     parentID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// List returns the discussion's comments flat, oldest first, soft-deleted
// ones included. Threading is reconstructed by the caller via parent_id.
func (s *CommentService) List(discussionID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := s.db.Where("discussion_id = ?", discussionID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Update applies the non-nil fields of upd. Only the author may edit.
func (s *CommentService) Update(id, authorID uint, upd CommentUpdate) (*models.Comment, error) {
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != authorID {
		return nil, ErrUnauthorized
	}

	if upd.Body != nil {
		if err := s.db.Model(comment).Update("body", *upd.Body).Error; err != nil {
			return nil, err
		}
	}
	return comment, nil
}

// SoftDelete marks the comment deleted and returns it so callers can see
// which discussion it belonged to.
func (s *CommentService) SoftDelete(id, authorID uint) (*models.Comment, error) {
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != authorID {
		return nil, ErrUnauthorized
	}

	now := time.Now()
	if err := s.db.Model(comment).Updates(map[string]interface{}{
		"deleted":    true,
		"deleted_at": now,
	}).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
