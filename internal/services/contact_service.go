package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/contactbook/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contactbook/internal/models"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrContactFieldsRequired = errors.New("name and email are required")
	ErrContactNameTooLong    = errors.New("name must be at most 255 characters")
	ErrContactInvalidEmail   = errors.New("invalid email address")
	ErrContactEmailTaken     = errors.New("email already exists")
	ErrContactNotFound       = errors.New("contact not found")
)

// likeEscaper neutralizes LIKE wildcards in user-supplied search terms
// so they match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ContactService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{
		db:       db,
		validate: validator.New(),
	}
}

// List returns all contacts, newest first. A non-empty query filters
// by name, email, or phone substring (case-insensitive).
func (s *ContactService) List(query string) ([]models.Contact, error) {
	tx := s.db.Order("created_at DESC, id DESC")

	if q := strings.TrimSpace(query); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		tx = tx.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(COALESCE(phone, '')) LIKE ? ESCAPE '\'`,
			like, like, like,
		)
	}

	contacts := make([]models.Contact, 0)
	if err := tx.Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Create inserts a contact and returns the stored row. A duplicate
// email surfaces as ErrContactEmailTaken via the unique constraint.
func (s *ContactService) Create(req *dto.ContactRequest) (*models.Contact, error) {
	name, email, phone, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	contact := models.Contact{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContactEmailTaken
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	var created models.Contact
	if err := s.db.First(&created, contact.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load created contact: %w", err)
	}
	return &created, nil
}

func (s *ContactService) Get(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	return &contact, nil
}

// Update replaces name, email, and phone wholesale. Zero affected rows
// means the id does not exist.
func (s *ContactService) Update(id uint, req *dto.ContactRequest) (*models.Contact, error) {
	name, email, phone, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Contact{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrContactEmailTaken
		}
		return nil, fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrContactNotFound
	}

	var updated models.Contact
	if err := s.db.First(&updated, id).Error; err != nil {
		return nil, fmt.Errorf("failed to load updated contact: %w", err)
	}
	return &updated, nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (s *ContactService) normalize(req *dto.ContactRequest) (name, email string, phone *string, err error) {
	name = strings.TrimSpace(req.Name)
	email = strings.TrimSpace(req.Email)

	if name == "" || email == "" {
		return "", "", nil, ErrContactFieldsRequired
	}
	if utf8.RuneCountInString(name) > 255 {
		return "", "", nil, ErrContactNameTooLong
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", "", nil, ErrContactInvalidEmail
	}

	if p := strings.TrimSpace(req.Phone); p != "" {
		phone = &p
	}
	return name, email, phone, nil
}
