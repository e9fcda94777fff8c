package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/models"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthConfig holds JWT signing settings.
type AuthConfig struct {
	Secret  string
	ExpHour int
}

// UserLogic handles account registration and authentication.
type UserLogic struct {
	userDAO *dao.UserDAO
	auth    AuthConfig
}

func NewUserLogic(userDAO *dao.UserDAO, auth AuthConfig) *UserLogic {
	return &UserLogic{
		userDAO: userDAO,
		auth:    auth,
	}
}

// Credentials is returned on successful register/login.
type Credentials struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// Register creates an account and returns a signed token.
func (l *UserLogic) Register(email, password string) (*Credentials, error) {
	_, err := l.userDAO.GetUserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := fmt.Sprintf("user_%s", uuid.NewString())
	user, err := l.userDAO.CreateUser(userID, email, string(hash))
	if err != nil {
		return nil, err
	}

	token, err := l.generateJWT(user.UserID)
	if err != nil {
		return nil, err
	}
	return &Credentials{UserID: user.UserID, Token: token}, nil
}

// Login verifies the password, records the login time and returns a
// signed token.
func (l *UserLogic) Login(email, password string) (*Credentials, error) {
	user, err := l.userDAO.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := l.userDAO.TouchLastLogin(user.UserID, time.Now()); err != nil {
		return nil, err
	}

	token, err := l.generateJWT(user.UserID)
	if err != nil {
		return nil, err
	}
	return &Credentials{UserID: user.UserID, Token: token}, nil
}

// GetUser retrieves a user by its stable id.
func (l *UserLogic) GetUser(userID string) (*models.User, error) {
	return l.userDAO.GetUserByUserID(userID)
}

func (l *UserLogic) generateJWT(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * time.Duration(l.auth.ExpHour)).Unix(),
	})
	return token.SignedString([]byte(l.auth.Secret))
}
