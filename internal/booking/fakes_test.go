package booking

import (
	"context"
	"fmt"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/catalog"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/vehicle"
)

// 内存版存储，只给测试用；行为契约与 GORM 实现保持一致
// （查不到返回各包的哨兵错误，Create 由存储分配 id）。

type fakeCatalog struct {
	services map[string]catalog.Service
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*catalog.Service, error) {
	if s, ok := f.services[id]; ok {
		cp := s
		return &cp, nil
	}
	return nil, catalog.ErrNotFound
}

type fakeVehicles struct {
	vehicles map[string]vehicle.Vehicle
	seq      int

	// duplicateOnCreate 模拟并发请求先写入了同一车牌：
	// Create 返回唯一索引冲突，同时把对方的行放进存储。
	duplicateOnCreate *vehicle.Vehicle
	createCalls       int
}

func (f *fakeVehicles) FindByID(_ context.Context, id string) (*vehicle.Vehicle, error) {
	if v, ok := f.vehicles[id]; ok {
		cp := v
		return &cp, nil
	}
	return nil, vehicle.ErrNotFound
}

func (f *fakeVehicles) FindByPlateNumber(_ context.Context, plate string) (*vehicle.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.PlateNumber == plate {
			cp := v
			return &cp, nil
		}
	}
	return nil, vehicle.ErrNotFound
}

func (f *fakeVehicles) Create(_ context.Context, v *vehicle.Vehicle) error {
	f.createCalls++
	if f.duplicateOnCreate != nil {
		f.vehicles[f.duplicateOnCreate.ID] = *f.duplicateOnCreate
		f.duplicateOnCreate = nil
		return vehicle.ErrDuplicatePlate
	}
	for _, existing := range f.vehicles {
		if existing.PlateNumber == v.PlateNumber {
			return vehicle.ErrDuplicatePlate
		}
	}
	f.seq++
	v.ID = fmt.Sprintf("veh-%d", f.seq)
	f.vehicles[v.ID] = *v
	return nil
}

type fakeBookings struct {
	bookings map[string]Booking
	seq      int
}

func (f *fakeBookings) Create(_ context.Context, b *Booking) error {
	f.seq++
	b.ID = fmt.Sprintf("bk-%d", f.seq)
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookings) Update(_ context.Context, b *Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookings) FindByID(_ context.Context, id string) (*Booking, error) {
	if b, ok := f.bookings[id]; ok {
		cp := b
		return &cp, nil
	}
	return nil, ErrNotFound
}

// fakeTransactor 直接调用 fn，不模拟回滚（工作流失败路径靠错误值断言）。
type fakeTransactor struct {
	stores Stores
}

func (f *fakeTransactor) InTx(_ context.Context, fn func(s Stores) error) error {
	return fn(f.stores)
}

func (f *fakeTransactor) Stores() Stores {
	return f.stores
}

func newFakeEnv() (*Service, *fakeCatalog, *fakeVehicles, *fakeBookings) {
	fc := &fakeCatalog{services: map[string]catalog.Service{}}
	fv := &fakeVehicles{vehicles: map[string]vehicle.Vehicle{}}
	fb := &fakeBookings{bookings: map[string]Booking{}}
	svc := NewService(&fakeTransactor{stores: Stores{
		Catalog:  fc,
		Vehicles: fv,
		Bookings: fb,
	}})
	return svc, fc, fv, fb
}
