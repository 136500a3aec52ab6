package services

import (
	"errors"
	"parley/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create inserts a new user. The unique index on username decides races
// between concurrent creates; the losing writer gets ErrDuplicateUsername
// and its insert is rolled back.
func (s *UserService) Create(username string) (*models.User, error) {
	user := models.User{Username: username}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}
