package services

import (
	"errors"
	"parley/internal/models"
	"time"

	"gorm.io/gorm"
)

// DiscussionUpdate enumerates the mutable fields of a discussion. A nil
// field is left untouched.
type DiscussionUpdate struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type DiscussionService struct {
	db *gorm.DB
}

func NewDiscussionService(db *gorm.DB) *DiscussionService {
	return &DiscussionService{db: db}
}

// Create verifies the author exists, then inserts the discussion.
func (s *DiscussionService) Create(title, body string, authorID uint) (*models.Discussion, error) {
	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	discussion := models.Discussion{
		Title:    title,
		Body:     body,
		AuthorID: authorID,
	}
	if err := s.db.Create(&discussion).Error; err != nil {
		return nil, err
	}
	return &discussion, nil
}

// List returns every discussion, soft-deleted ones included.
func (s *DiscussionService) List() ([]models.Discussion, error) {
	discussions := make([]models.Discussion, 0)
	if err := s.db.Find(&discussions).Error; err != nil {
		return nil, err
	}
	return discussions, nil
}

func (s *DiscussionService) Get(id uint) (*models.Discussion, error) {
	var discussion models.Discussion
	if err := s.db.First(&discussion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscussionNotFound
		}
		return nil, err
	}
	return &discussion, nil
}

// Update applies the non-nil fields of upd. Only the author may edit;
// nothing is written when a check fails.
func (s *DiscussionService) Update(id, authorID uint, upd DiscussionUpdate) (*models.Discussion, error) {
	discussion, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if discussion.AuthorID != authorID {
		return nil, ErrUnauthorized
	}

	updates := make(map[string]interface{})
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Body != nil {
		updates["body"] = *upd.Body
	}
	if len(updates) > 0 {
		if err := s.db.Model(discussion).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return discussion, nil
}

// SoftDelete marks the discussion deleted. The row is retained.
func (s *DiscussionService) SoftDelete(id, authorID uint) error {
	discussion, err := s.Get(id)
	if err != nil {
		return err
	}
	if discussion.AuthorID != authorID {
		return ErrUnauthorized
	}

	now := time.Now()
	return s.db.Model(discussion).Updates(map[string]interface{}{
		"deleted":    true,
		"deleted_at": now,
	}).Error
}
