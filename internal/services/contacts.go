package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"databridge-api/internal/apperr"
	"databridge-api/internal/database"
	"databridge-api/internal/models"

	"gorm.io/gorm"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	errContactNotFound = apperr.New(apperr.NotFound, "Contact query not found")
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactQuery, error) {
	contacts := []models.ContactQuery{}
	if err := s.DB.WithContext(ctx).Order("created_at desc, id desc").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id uint) (*models.ContactQuery, error) {
	var contact models.ContactQuery
	if err := s.DB.WithContext(ctx).First(&contact, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, errContactNotFound
		}
		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}
	return &contact, nil
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*models.ContactQuery, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)

	if in.Name == "" || in.Email == "" || in.Subject == "" || strings.TrimSpace(in.Message) == "" {
		return nil, apperr.New(apperr.Validation, "Missing required fields")
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, apperr.New(apperr.Validation, "Invalid email format")
	}

	contact := models.ContactQuery{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if in.Phone != "" {
		contact.Phone = &in.Phone
	}

	db := s.DB.WithContext(ctx)
	if err := db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	if err := db.First(&contact, contact.ID).Error; err != nil {
		return nil, fmt.Errorf("reload contact %d: %w", contact.ID, err)
	}
	return &contact, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id uint, status models.ContactStatus) (*models.ContactQuery, error) {
	if !status.Valid() {
		return nil, apperr.New(apperr.Validation, "Invalid status")
	}

	var contact models.ContactQuery
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ContactQuery{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errContactNotFound
		}
		return tx.First(&contact, id).Error
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("update contact %d status: %w", id, err)
	}
	return &contact, nil
}
