package model

import "time"

type Customer struct {
	CustID           string    `json:"cust_id" gorm:"column:cust_id;primaryKey;size:64"`
	NamaCst          string    `json:"nama_cst" gorm:"column:nama_cst;size:255"`
	Alamat           string    `json:"alamat" gorm:"size:500"`
	SalesmanPengampu *string   `json:"salesman_pengampu" gorm:"column:salesman_pengampu;size:150;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "master_customer"
}

// Pengampu mengembalikan nama salesman yang memegang customer ini ("" jika belum dipetakan).
func (c Customer) Pengampu() string {
	if c.SalesmanPengampu == nil {
		return ""
	}
	return *c.SalesmanPengampu
}
