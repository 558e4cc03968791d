package auth

import (
	"context"

	"aimlink-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles admin credentials and login.
type Service struct {
	DB        *gorm.DB
	JWTSecret string
}

// HashPassword returns a salted bcrypt hash of the plaintext.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares plaintext against a stored hash. bcrypt's compare is
// constant-time over the hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrEmailPasswordRequired
	}
	var admin models.Admin
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !CheckPassword(password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := IssueToken(s.JWTSecret, admin.Email)
	if err != nil {
		return nil, "", err
	}
	return &admin, token, nil
}

// FindByEmail resolves a token's identity claim to a live admin row. Used by
// the guard so tokens of deleted admins stop working.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// EnsureAdmin creates the admin account if no row with that email exists.
// Called once at startup; the API itself never creates admins.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(&models.Admin{Email: email, PasswordHash: hash}).Error
}
