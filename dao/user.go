package dao

import (
	"time"

	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/models"
)

// UserDAO handles user-related database operations.
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user record.
func (d *UserDAO) CreateUser(userID, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		UserID:       userID,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (d *UserDAO) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUserID retrieves a user by its stable user id.
func (d *UserDAO) GetUserByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login.
func (d *UserDAO) TouchLastLogin(userID string, at time.Time) error {
	return d.db.Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("last_login_at", at).Error
}
