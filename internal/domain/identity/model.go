package identity

import (
	"time"

	"github.com/clinic/clinic/internal/platform/auth"
)

// User is an account of any role. The password hash never leaves the
// service layer.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Role          auth.Role `gorm:"type:varchar(16);not null;index" json:"role"`
	ContactNumber string    `gorm:"size:32" json:"contact_number,omitempty"`
	Age           *int      `json:"age,omitempty"`
	Gender        string    `gorm:"size:32" json:"gender,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) Principal() auth.Principal {
	return auth.Principal{ID: u.ID, Role: u.Role}
}

// NewUser is the registration payload.
type NewUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	ContactNumber string `json:"contact_number"`
	Age           *int   `json:"age"`
	Gender        string `json:"gender"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
