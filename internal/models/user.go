// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name           string     `json:"name" gorm:"size:255;not null"`
	Company        string     `json:"company" gorm:"size:255;not null;index"`
	Email          string     `json:"email" gorm:"uniqueIndex;size:255"`
	Username       string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string     `json:"-" gorm:"size:255;not null"`
	Nickname       string     `json:"nickname,omitempty" gorm:"size:100"`
	Gender         string     `json:"gender,omitempty" gorm:"size:50"`
	Country        string     `json:"country,omitempty" gorm:"size:100"`
	ProfilePicture string     `json:"profile_picture,omitempty" gorm:"size:512"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);default:'user'"`
	Status         UserStatus `json:"status" gorm:"type:varchar(20);default:'Aktiv'"`
	LastLoginDate  *time.Time `json:"last_login_date,omitempty"`
	LastLoginIP    string     `json:"last_login_ip,omitempty" gorm:"size:64"`

	// Relationships
	Bids  []Bid  `json:"bids,omitempty" gorm:"foreignKey:UserID"`
	Parts []Part `json:"parts,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
