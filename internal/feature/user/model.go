package user

import (
	"time"

	"gorm.io/gorm"

	"paranoid-users/internal/domain"
	"paranoid-users/pkg/utils"
)

// TableName 与历史库保持一致（大写 + 驼峰列名）
const TableName = "Users"

type UserModel struct {
	ID        string  `gorm:"column:id;primaryKey;type:varchar(32)"`
	FirstName string  `gorm:"column:firstName;size:255;not null"`
	LastName  string  `gorm:"column:lastName;size:255;not null"`
	IsActive  bool    `gorm:"column:isActive;not null;default:true"`
	Price     float64 `gorm:"column:price;type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time      `gorm:"column:createdAt;not null;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updatedAt;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deletedAt;index"`
}

func (UserModel) TableName() string { return TableName }

// BeforeCreate 补 ID
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	return nil
}

func (m *UserModel) ToDomain() domain.User {
	u := domain.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		IsActive:  m.IsActive,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

func FromDomain(u *domain.User) *UserModel {
	m := &UserModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		Price:     u.Price,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	}
	return m
}
