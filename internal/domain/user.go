package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	IsActive  bool       `json:"isActive"`
	Price     float64    `json:"price"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// Deleted 是否处于软删状态
func (u *User) Deleted() bool { return u.DeletedAt != nil }

// PriceStats 未软删记录的价格聚合；表为空时 Min/Max 为 nil
type PriceStats struct {
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
	ActiveCount int64    `json:"activeCount"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context, withDeleted bool) ([]User, error)
	PriceStats(ctx context.Context) (PriceStats, error)
	FindByID(ctx context.Context, id string, withDeleted bool) (*User, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (*User, error)
}
