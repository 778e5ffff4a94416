package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Target struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	SalesmanNama  string          `json:"salesman_nama" gorm:"column:salesman_nama;size:150;not null;uniqueIndex:uq_target_periode,priority:1"`
	Bulan         int             `json:"bulan" gorm:"not null;uniqueIndex:uq_target_periode,priority:2"`
	Tahun         int             `json:"tahun" gorm:"not null;uniqueIndex:uq_target_periode,priority:3"`
	TargetQty     decimal.Decimal `json:"target_qty" gorm:"type:decimal(18,2);not null;default:0"`
	TargetTagihan decimal.Decimal `json:"target_tagihan" gorm:"type:decimal(18,2);not null;default:0"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Target) TableName() string {
	return "target_sales"
}
