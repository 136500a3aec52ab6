package models

import (
	"time"
)

type Discussion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Body     string `gorm:"type:text" json:"body"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`

	// Soft delete bookkeeping. DeletedAt is a plain *time.Time on purpose:
	// gorm.DeletedAt would scope deleted rows out of every query, but
	// deleted discussions must stay visible in listings.
	Deleted   bool       `gorm:"default:false" json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}
