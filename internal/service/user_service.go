package service

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"paranoid-users/internal/domain"
)

var lifecycleTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "users_lifecycle_total", Help: "Count of user lifecycle transitions"},
	[]string{"op"},
)

func init() { prometheus.MustRegister(lifecycleTotal) }

const (
	OpCreate     = "create"
	OpSoftDelete = "soft_delete"
	OpHardDelete = "hard_delete"
	OpRestore    = "restore"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
}

// ListResult 列表 + 未软删记录的价格聚合
type ListResult struct {
	Items []domain.User     `json:"items"`
	Stats domain.PriceStats `json:"stats"`
}

type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(repo domain.UserRepository, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{repo: repo, log: log.Named("users")}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, domain.NewInvalidInput("firstName and lastName are required")
	}
	u := &domain.User{FirstName: first, LastName: last, IsActive: true}
	if err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("create user failed", zap.Error(err))
		return nil, err
	}
	lifecycleTotal.WithLabelValues(OpCreate).Inc()
	s.log.Info("user created", zap.String("user_id", u.ID))
	return u, nil
}

// List 返回全部记录（含软删）以及未软删记录的价格统计
func (s *UserService) List(ctx context.Context) (*ListResult, error) {
	stats, err := s.repo.PriceStats(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Stats: stats}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id, false)
}

// GetAny 忽略软删可见性
func (s *UserService) GetAny(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id, true)
}

func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	u, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, u.ID); err != nil {
		return err
	}
	lifecycleTotal.WithLabelValues(OpSoftDelete).Inc()
	s.log.Info("user soft deleted", zap.String("user_id", u.ID))
	return nil
}

// HardDelete 不可逆；已软删的记录需先 Restore
func (s *UserService) HardDelete(ctx context.Context, id string) error {
	u, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := s.repo.HardDelete(ctx, u.ID); err != nil {
		return err
	}
	lifecycleTotal.WithLabelValues(OpHardDelete).Inc()
	s.log.Warn("user hard deleted", zap.String("user_id", u.ID))
	return nil
}

func (s *UserService) Restore(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	lifecycleTotal.WithLabelValues(OpRestore).Inc()
	s.log.Info("user restored", zap.String("user_id", u.ID))
	return u, nil
}
