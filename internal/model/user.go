package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleSPV      = "spv"
	RoleSalesman = "salesman"
)

type User struct {
	gorm.Model
	Username string  `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Password string  `json:"-" gorm:"size:100;not null"`
	Role     string  `json:"role" gorm:"size:20;index;not null"`
	RealName string  `json:"real_name" gorm:"size:150;index;not null"`
	NamaSPV  *string `json:"nama_spv" gorm:"column:nama_spv;size:150;index"` // real_name atasan (khusus salesman)
}

func (User) TableName() string {
	return "users"
}

// MasterSPV adalah daftar nama supervisor yang boleh dipilih saat membuat akun.
type MasterSPV struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	NamaSPV string `json:"nama_spv" gorm:"column:nama_spv;size:150;uniqueIndex;not null"`
}

func (MasterSPV) TableName() string {
	return "master_spv"
}
