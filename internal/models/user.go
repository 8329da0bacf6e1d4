package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string
	PasswordHash string `gorm:"not null"`
	Phone        string
	Address      string
	Role         string `gorm:"not null;default:'user'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetPassword stores the bcrypt hash of the given plain password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plain password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) ToDTO() DTO {
	return DTO{
		"id":            u.ID,
		"username":      u.Username,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"phone":         u.Phone,
		"address":       u.Address,
		"role":          u.Role,
		"created_at":    formatTime(u.CreatedAt),
		"updated_at":    formatTime(u.UpdatedAt),
	}
}

// PublicDTO is the DTO without credentials, used for API responses
func (u User) PublicDTO() DTO {
	dto := u.ToDTO()
	delete(dto, "password_hash")
	return dto
}

func (u *User) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "username"); err != nil {
		return err
	}
	*u = User{Role: RoleUser}
	return u.ApplyDTO(dto)
}

func (u *User) ApplyDTO(dto DTO) error {
	if id, ok, err := dtoUint(dto, "id"); err != nil {
		return err
	} else if ok {
		u.ID = id
	}
	if username, ok, err := dtoString(dto, "username"); err != nil {
		return err
	} else if ok {
		if username == "" {
			return NewValidationError("username cannot be empty")
		}
		u.Username = username
	}
	fields := map[string]*string{
		"email":         &u.Email,
		"password_hash": &u.PasswordHash,
		"phone":         &u.Phone,
		"address":       &u.Address,
	}
	for key, target := range fields {
		if value, ok, err := dtoString(dto, key); err != nil {
			return err
		} else if ok {
			*target = value
		}
	}
	if role, ok, err := dtoString(dto, "role"); err != nil {
		return err
	} else if ok {
		if role != RoleAdmin && role != RoleUser {
			return NewValidationError("role must be 'admin' or 'user'")
		}
		u.Role = role
	}
	return applyTimestamps(dto, &u.CreatedAt, &u.UpdatedAt)
}
