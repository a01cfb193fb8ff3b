package domain

import (
	"time"

	"github.com/google/uuid"
)

// User models a member of a household with system access.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Privilege   Privilege `json:"privilege" gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser validates the given fields and constructs a User with a fresh id
// and equal created/updated timestamps. Construction is all-or-nothing: on
// failure no id is allocated.
func NewUser(name, username, phoneNumber, email string, privilege Privilege) (*User, error) {
	u := &User{
		Name:        name,
		Username:    username,
		PhoneNumber: phoneNumber,
		Email:       email,
		Privilege:   privilege,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

// Validate enforces the user construction invariants. It is re-run on full
// updates before anything is persisted.
func (u *User) Validate() error {
	if u.Name == "" || u.Username == "" || u.PhoneNumber == "" || u.Email == "" {
		return &UserError{reason: "name, username, phone number and email are required"}
	}
	if _, err := ParsePrivilege(string(u.Privilege)); err != nil {
		return err
	}
	return nil
}

// IsAdmin reports whether the user holds the admin privilege.
func (u *User) IsAdmin() bool { return u.Privilege == PrivilegeAdmin }

// IsGuest reports whether the user holds the guest privilege.
func (u *User) IsGuest() bool { return u.Privilege == PrivilegeGuest }
