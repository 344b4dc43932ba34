package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/catalog"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/apperr"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/vehicle"
)

// Service 封装预约领域的核心用例（不依赖 HTTP），便于复用和测试。
// create/rate/confirm 各自跑在一个事务里，失败整体回滚。
type Service struct {
	tx Transactor
}

func NewService(tx Transactor) *Service {
	return &Service{tx: tx}
}

// ServiceRef 创建预约时对服务项的引用（只认 id）。
type ServiceRef struct {
	ID string `json:"id"`
}

// VehicleInput 创建预约时的车辆信息：要么给 id，要么给车牌号。
type VehicleInput struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Type        string `json:"type"`
}

// CreateInput 创建预约的入参（可作为传输层 DTO 的基础）。
type CreateInput struct {
	Service     *ServiceRef   `json:"service"`
	Vehicle     *VehicleInput `json:"vehicle"`
	BookingTime *time.Time    `json:"bookingTime"`
	Status      Status        `json:"status"`
}

// Create 创建预约：
// 1. 按 id 解析服务项
// 2. 解析车辆（优先 id，其次车牌号 find-or-create）
// 3. bookingTime 缺省为当前时间，status 缺省为 PENDING
// 4. rating 一律置空，只能走 Rate 写入
// 可能插入一行 vehicle，总是插入一行 booking，两者在同一事务里。
func (s *Service) Create(ctx context.Context, in CreateInput) (*Booking, error) {
	if s == nil || s.tx == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	if in.Service == nil || strings.TrimSpace(in.Service.ID) == "" {
		return nil, apperr.Validation("service id must be provided")
	}
	if in.Vehicle == nil {
		return nil, apperr.Validation("vehicle must be provided")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, apperr.Validation("invalid status")
	}

	var created *Booking
	err := s.tx.InTx(ctx, func(st Stores) error {
		svc, err := st.Catalog.FindByID(ctx, strings.TrimSpace(in.Service.ID))
		if err != nil {
			if isNotFound(err) {
				return apperr.NotFound("service not found")
			}
			return err
		}

		veh, err := resolveVehicle(ctx, st.Vehicles, in.Vehicle)
		if err != nil {
			return err
		}

		b := &Booking{
			ServiceID: svc.ID,
			Service:   *svc,
			VehicleID: veh.ID,
			Vehicle:   *veh,
			Status:    StatusPending,
			Rating:    nil,
		}
		if in.BookingTime != nil {
			b.BookingTime = *in.BookingTime
		} else {
			b.BookingTime = time.Now()
		}
		if in.Status != "" {
			b.Status = in.Status
		}

		if err := st.Bookings.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveVehicle 把入参解析为已入库的车辆：
// - 有 id：按 id 查，查不到报 404
// - 有车牌号：去掉首尾空白后精确查找，查到则复用（库里的 type 为准），
//   查不到则新建入库
// - 两者都没有：入参错误
// 新建撞上车牌唯一索引说明并发请求先写入了同一车牌，重查一次当作已存在。
func resolveVehicle(ctx context.Context, store VehicleStore, in *VehicleInput) (*vehicle.Vehicle, error) {
	if id := strings.TrimSpace(in.ID); id != "" {
		v, err := store.FindByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return nil, apperr.NotFound("vehicle not found by id")
			}
			return nil, err
		}
		return v, nil
	}

	plate := strings.TrimSpace(in.PlateNumber)
	if plate == "" {
		return nil, apperr.Validation("vehicle id or plateNumber must be provided")
	}

	v, err := store.FindByPlateNumber(ctx, plate)
	if err == nil {
		return v, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	newV := &vehicle.Vehicle{
		PlateNumber: plate,
		Type:        in.Type,
	}
	if err := store.Create(ctx, newV); err != nil {
		if errors.Is(err, vehicle.ErrDuplicatePlate) {
			return store.FindByPlateNumber(ctx, plate)
		}
		return nil, err
	}
	return newV, nil
}

// Rate 给预约打分（1-5），并无条件置为 COMPLETED；重复打分允许。
func (s *Service) Rate(ctx context.Context, id string, rating int) (*Booking, error) {
	if s == nil || s.tx == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	if rating < 1 || rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	var updated *Booking
	err := s.tx.InTx(ctx, func(st Stores) error {
		b, err := findBooking(ctx, st.Bookings, id)
		if err != nil {
			return err
		}
		r := rating
		b.Rating = &r
		b.Status = StatusCompleted
		if err := st.Bookings.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Confirm 无条件把预约置为 CONFIRMED（不做状态机守卫，与现有后台行为一致）。
func (s *Service) Confirm(ctx context.Context, id string) (*Booking, error) {
	if s == nil || s.tx == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	var updated *Booking
	err := s.tx.InTx(ctx, func(st Stores) error {
		b, err := findBooking(ctx, st.Bookings, id)
		if err != nil {
			return err
		}
		b.Status = StatusConfirmed
		if err := st.Bookings.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get 按 id 查询预约，纯读。
func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	if s == nil || s.tx == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return findBooking(ctx, s.tx.Stores().Bookings, id)
}

func findBooking(ctx context.Context, store BookingStore, id string) (*Booking, error) {
	b, err := store.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, err
	}
	return b, nil
}

// isNotFound 兼容各存储包自己的 not-found 哨兵错误。
func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, vehicle.ErrNotFound) ||
		errors.Is(err, catalog.ErrNotFound)
}
