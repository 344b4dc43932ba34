package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

// Create 入库并分配 id。
func (r *Repo) Create(ctx context.Context, s *Service) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	s.ID = uuid.NewString()
	return db.Create(s).Error
}

func (r *Repo) Update(ctx context.Context, s *Service) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(s).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Service, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var s Service
	if err := db.Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) FindAll(ctx context.Context) ([]Service, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var services []Service
	if err := db.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// DeleteByID 无条件删除；不检查是否仍有预约引用该服务项。
func (r *Repo) DeleteByID(ctx context.Context, id string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("id = ?", id).Delete(&Service{}).Error
}
