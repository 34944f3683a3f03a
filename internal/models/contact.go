package models

import "time"

// Contact is an address-book entry. Contacts are global rather than
// per-user; email is unique across the whole table. Phone is a pointer
// so a missing phone serializes as JSON null.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     *string   `gorm:"size:50" json:"phone"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
