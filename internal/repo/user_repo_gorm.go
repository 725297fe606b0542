package repo

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paranoid-users/internal/domain"
	"paranoid-users/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	m := user.FromDomain(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*u = m.ToDomain()
	return nil
}

// List withDeleted=true 时包含软删记录
func (r *UserRepo) List(ctx context.Context, withDeleted bool) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&user.UserModel{})
	if withDeleted {
		q = q.Unscoped()
	}
	var ms []user.UserModel
	err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].ToDomain())
	}
	return out, nil
}

// PriceStats 只统计未软删的记录
func (r *UserRepo) PriceStats(ctx context.Context) (domain.PriceStats, error) {
	var row struct {
		MinPrice    sql.NullFloat64
		MaxPrice    sql.NullFloat64
		ActiveCount int64
	}
	err := r.db.WithContext(ctx).Model(&user.UserModel{}).
		Select("MIN(price) AS min_price, MAX(price) AS max_price, COUNT(*) AS active_count").
		Scan(&row).Error
	if err != nil {
		return domain.PriceStats{}, err
	}
	st := domain.PriceStats{ActiveCount: row.ActiveCount}
	if row.MinPrice.Valid {
		st.MinPrice = &row.MinPrice.Float64
	}
	if row.MaxPrice.Valid {
		st.MaxPrice = &row.MaxPrice.Float64
	}
	return st, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string, withDeleted bool) (*domain.User, error) {
	m, err := r.find(ctx, id, withDeleted)
	if err != nil {
		return nil, err
	}
	u := m.ToDomain()
	return &u, nil
}

// SoftDelete 写 deletedAt，行保留
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&user.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewUserNotFound(id)
	}
	return nil
}

// HardDelete 物理删除，只作用于未软删的记录
func (r *UserRepo) HardDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ?", id).
		Where(clause.Eq{Column: clause.Column{Name: "deletedAt"}, Value: nil}).
		Delete(&user.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewUserNotFound(id)
	}
	return nil
}

// Restore 按 id 查（含软删），清空 deletedAt 后重新读回
func (r *UserRepo) Restore(ctx context.Context, id string) (*domain.User, error) {
	m, err := r.find(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Unscoped().Model(m).Update("DeletedAt", nil).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id, false)
}

func (r *UserRepo) find(ctx context.Context, id string, withDeleted bool) (*user.UserModel, error) {
	q := r.db.WithContext(ctx)
	if withDeleted {
		q = q.Unscoped()
	}
	var m user.UserModel
	err := q.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewUserNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
