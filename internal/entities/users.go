package entities

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:100" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	FirstName    string     `gorm:"size:63" json:"first_name,omitempty"`
	LastName     string     `gorm:"size:63" json:"last_name,omitempty"`
	Avatar       string     `gorm:"size:1024;default:'default/avatar.png'" json:"avatar,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsStaff      bool       `gorm:"default:false" json:"is_staff"`
	LastLoginAt  *time.Time `json:"-"`

	// Login throttling state, managed by the auth service.
	FailedLoginCount int        `gorm:"default:0" json:"-"`
	LockedUntil      *time.Time `json:"-"`

	Books     []Book            `gorm:"foreignKey:UploadByID" json:"-"`
	Favorites []Favorite        `gorm:"foreignKey:UserID" json:"-"`
	Progress  []ReadingProgress `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
