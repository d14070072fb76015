package services

import (
	"errors"
	"log"

	"github.com/promptgallery/backend/internal/config"
	"github.com/promptgallery/backend/internal/models"
	"github.com/promptgallery/backend/pkg/crypto"
	jwtpkg "github.com/promptgallery/backend/pkg/jwt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login authenticates a seeded user and returns an access token
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !crypto.CheckPassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	accessToken, err := jwtpkg.GenerateToken(user.ID, jwtpkg.AccessToken, s.cfg.JWTSecret, s.cfg.JWTAccessTokenDuration)
	if err != nil {
		return "", nil, err
	}

	return accessToken, &user, nil
}

// ValidateAccessToken validates a token and returns its claims
func (s *AuthService) ValidateAccessToken(token string) (*jwtpkg.Claims, error) {
	claims, err := jwtpkg.ValidateToken(token, s.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwtpkg.AccessToken {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}

// EnsureDemoUser seeds the demo account if no user with that name exists, so
// the login flow works against a fresh database.
func (s *AuthService) EnsureDemoUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", s.cfg.DemoUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := crypto.HashPassword(s.cfg.DemoPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{Username: s.cfg.DemoUsername, Password: hash}
	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("Seeded demo user %q (id %d)", user.Username, user.ID)
	return nil
}
