package catalog

import (
	"errors"
	"time"
)

// ErrNotFound 服务项不存在。
var ErrNotFound = errors.New("service not found")

// Service 是 services 表的 GORM 模型（洗车服务项目）。
type Service struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:128;not null" json:"name"`
	Description     string    `gorm:"size:512" json:"description"`
	Price           float64   `gorm:"not null;default:0" json:"price"`                    // 非负金额
	DurationMinutes int       `gorm:"not null;default:0" json:"durationMinutes"`          // 预计耗时（分钟）
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
