package user

import "time"

// Role is a closed enumeration. Route selection is the only place that
// branches on it; everything else carries it opaquely.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Role         Role      `gorm:"column:role;type:varchar(20);not null"`
	Designation  string    `gorm:"column:designation;type:varchar(255)"`
	Department   string    `gorm:"column:department;type:varchar(255)"`
	JoiningDate  string    `gorm:"column:joining_date;type:varchar(10)"`
	Contact      *string   `gorm:"column:contact;type:varchar(50)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
