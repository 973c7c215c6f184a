// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

// User roles
const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
)

type User struct { // User struct represents a user in the database
	ID       string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`                                                          // Unique user ID
	Name     string `gorm:"size:255;not null" json:"name" bson:"name" validate:"required"`                                    // Display name
	Email    string `gorm:"size:191;uniqueIndex;not null" json:"email" bson:"email" validate:"required,email"`                // User's email (must be unique)
	Password string `gorm:"size:255;not null" json:"-" bson:"password,omitempty" validate:"required"`                         // Hashed password, never serialized
	Role     string `gorm:"size:16;not null;default:'Editor'" json:"role" bson:"role" validate:"required,oneof=Admin Editor"` // Admin or Editor
}

func (u *User) Prepare(time.Time) {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.Role == "" {
		u.Role = RoleEditor
	}
}

// Profile is the part of a user that is safe to hand back after login.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// UserInput is the create body. It is the only place a plaintext password exists.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Editor"`
}

// User builds the record to store, given the already hashed password.
func (in UserInput) User(hashed string) User {
	return User{Name: in.Name, Email: in.Email, Password: hashed, Role: in.Role}
}

// UserPatch is the update body. Passwords cannot be changed through it.
type UserPatch struct {
	Name  *string `json:"name" validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,email"`
	Role  *string `json:"role" validate:"omitnil,oneof=Admin Editor"`
}

func (p UserPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Name != nil {
		f["name"] = *p.Name
	}
	if p.Email != nil {
		f["email"] = *p.Email
	}
	if p.Role != nil {
		f["role"] = *p.Role
	}
	return f
}

// Apply copies the supplied fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// LoginInput is the body of a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
