package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/catalog"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/vehicle"
)

// CatalogStore 预约流程需要的服务目录读操作。
type CatalogStore interface {
	FindByID(ctx context.Context, id string) (*catalog.Service, error)
}

// VehicleStore 预约流程需要的车辆读写操作。
type VehicleStore interface {
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
	FindByPlateNumber(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	Create(ctx context.Context, v *vehicle.Vehicle) error
}

// BookingStore 预约自身的读写操作。
type BookingStore interface {
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
}

// Stores 一次工作流调用可见的全部存储。
type Stores struct {
	Catalog  CatalogStore
	Vehicles VehicleStore
	Bookings BookingStore
}

// Transactor 把一次工作流调用包进同一个事务：
// fn 返回错误则整体回滚，调用方不会观察到写了一半的预约。
type Transactor interface {
	InTx(ctx context.Context, fn func(s Stores) error) error
	Stores() Stores
}

// GormTransactor 基于 gorm 事务的 Transactor 实现。
type GormTransactor struct {
	db *gorm.DB
}

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) InTx(ctx context.Context, fn func(s Stores) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(storesFor(tx))
	})
}

// Stores 非事务的存储访问（纯读场景用）。
func (t *GormTransactor) Stores() Stores {
	return storesFor(t.db)
}

func storesFor(db *gorm.DB) Stores {
	return Stores{
		Catalog:  catalog.NewRepo(db),
		Vehicles: vehicle.NewRepo(db),
		Bookings: NewRepo(db),
	}
}
