package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaksi adalah satu baris penjualan hasil upload. Baris dengan net_sls = 0 dianggap batal.
type Transaksi struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	Nomdok  string          `json:"nomdok" gorm:"size:64;not null;default:'';uniqueIndex:uq_transaksi,priority:1"`
	TglSls  time.Time       `json:"tgl_sls" gorm:"type:date;not null;index"`
	RepSls  string          `json:"rep_sls" gorm:"size:150;not null;index"`
	NamaSPV string          `json:"nama_spv" gorm:"column:nama_spv;size:150"`
	CustID  string          `json:"cust_id" gorm:"column:cust_id;size:64;not null;index"`
	NamaCst string          `json:"nama_cst" gorm:"column:nama_cst;size:255"`
	KodeItm string          `json:"kode_itm" gorm:"column:kode_itm;size:64;not null;default:'';uniqueIndex:uq_transaksi,priority:2"`
	NamaItm string          `json:"nama_itm" gorm:"column:nama_itm;size:255"`
	QtySls  decimal.Decimal `json:"qty_sls" gorm:"column:qty_sls;type:decimal(18,2);not null;default:0;uniqueIndex:uq_transaksi,priority:3"`
	NetSls  decimal.Decimal `json:"net_sls" gorm:"column:net_sls;type:decimal(18,2);not null;default:0;uniqueIndex:uq_transaksi,priority:4"`
}

func (Transaksi) TableName() string {
	return "transactions"
}

// Models dipakai oleh AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&MasterSPV{},
		&Customer{},
		&Target{},
		&Transaksi{},
	}
}
