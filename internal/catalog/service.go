package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/apperr"
)

// Store 抽象服务项的持久化，便于在测试中用内存实现替换。
type Store interface {
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id string) (*Service, error)
	FindAll(ctx context.Context) ([]Service, error)
	DeleteByID(ctx context.Context, id string) error
}

// Catalog 封装服务目录的 CRUD 用例（不依赖 HTTP），便于复用和测试。
type Catalog struct {
	store Store
}

func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// ServiceInput 创建/更新服务项的入参。
type ServiceInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validation("name must be provided")
	}
	if in.Price < 0 {
		return apperr.Validation("price must be non-negative")
	}
	if in.DurationMinutes <= 0 {
		return apperr.Validation("durationMinutes must be positive")
	}
	return nil
}

func (c *Catalog) List(ctx context.Context) ([]Service, error) {
	if c == nil || c.store == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	return c.store.FindAll(ctx)
}

func (c *Catalog) Get(ctx context.Context, id string) (*Service, error) {
	if c == nil || c.store == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	s, err := c.store.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("service not found")
	}
	return s, err
}

func (c *Catalog) Create(ctx context.Context, in ServiceInput) (*Service, error) {
	if c == nil || c.store == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	s := &Service{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
	}
	if err := c.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update 覆盖名称/描述/价格/时长；id 不变。
func (c *Catalog) Update(ctx context.Context, id string, in ServiceInput) (*Service, error) {
	existing, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing.Name = strings.TrimSpace(in.Name)
	existing.Description = in.Description
	existing.Price = in.Price
	existing.DurationMinutes = in.DurationMinutes
	if err := c.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 无条件删除，即使仍有预约引用该服务项（与现有后台行为保持一致）。
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if c == nil || c.store == nil {
		return fmt.Errorf("catalog not initialized")
	}
	return c.store.DeleteByID(ctx, id)
}
