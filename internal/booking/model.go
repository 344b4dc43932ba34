package booking

import (
	"errors"
	"time"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/catalog"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/vehicle"
)

// ErrNotFound 预约不存在。
var ErrNotFound = errors.New("booking not found")

// Status 预约状态枚举（持久化为字符串）。
//
// 状态赋值不做流转校验：confirm/rate 无条件覆盖当前状态，
// 与现有后台的行为保持一致。
type Status string

const (
	StatusPending   Status = "PENDING"   // 已创建，待确认
	StatusConfirmed Status = "CONFIRMED" // 已确认，待服务
	StatusCompleted Status = "COMPLETED" // 已完成（评分后自动进入）
)

// Valid 判断是否为三个合法状态之一。
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Booking 预约 GORM 模型。
// service/vehicle 以外键关联并在响应里整体展开；创建后不可变更。
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServiceID string          `gorm:"index;size:36;not null" json:"-"`
	Service   catalog.Service `gorm:"foreignKey:ServiceID" json:"service"`

	VehicleID string          `gorm:"index;size:36;not null" json:"-"`
	Vehicle   vehicle.Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle"`

	BookingTime time.Time `gorm:"not null" json:"bookingTime"`
	Status      Status    `gorm:"type:varchar(16);index;not null" json:"status"`
	Rating      *int      `json:"rating"` // 1-5，完成前为空

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
