package vehicle

import (
	"errors"
	"time"
)

var (
	// ErrNotFound 车辆不存在。
	ErrNotFound = errors.New("vehicle not found")
	// ErrDuplicatePlate 车牌号唯一索引冲突（并发 find-or-create 时可能触发）。
	ErrDuplicatePlate = errors.New("plate number already exists")
)

// Vehicle 是 vehicles 表的 GORM 模型。
// 车牌号唯一性由数据库唯一索引兜底，应用层查找只是尽力检查。
type Vehicle struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PlateNumber string    `gorm:"uniqueIndex;size:32;not null" json:"plateNumber"`
	Type        string    `gorm:"size:64" json:"type"` // Sedan / SUV / Truck 等，自由文本
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
