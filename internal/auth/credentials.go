package auth

import (
	"context"
	"errors"
	"fmt"

	"databridge-api/internal/apperr"
	"databridge-api/internal/database"
	"databridge-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is what a successful login knows about the admin.
type Identity struct {
	ID       uint
	Username string
	Email    string
	Role     models.UserRole
}

// dummyHash is compared against when the username is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type Verifier struct {
	DB *gorm.DB
}

func NewVerifier(db *gorm.DB) *Verifier {
	return &Verifier{DB: db}
}

// Authenticate never tells the caller whether the username or the password
// was wrong.
func (v *Verifier) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	var user models.AdminUser
	err := v.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if !database.IsNotFound(err) {
			return Identity{}, fmt.Errorf("lookup admin %q: %w", username, err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Identity{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     models.RoleAdmin,
	}, nil
}

// Profile loads the admin behind a verified token.
func (v *Verifier) Profile(ctx context.Context, id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := v.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, fmt.Errorf("load admin %d: %w", id, err)
	}
	return &user, nil
}
