package user

import "time"

// UserRole distinguishes ordinary visitors from panel administrators.
// Roles are provisioned out-of-band (cmd/create-admin); there is no
// in-app promotion flow.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the profile row behind an authenticated session.
type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"u_id"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "profiles"
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
