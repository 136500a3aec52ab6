package models

import (
	"time"
)

type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	AuthorID     uint       `gorm:"not null;index" json:"author_id"`
	Author       User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DiscussionID uint       `gorm:"not null;index" json:"discussion_id"`
	Discussion   Discussion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID     *uint      `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent       *Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`

	Deleted   bool       `gorm:"default:false" json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}
