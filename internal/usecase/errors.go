package usecase

import "errors"

// Error sentinel. Detail ditambahkan dengan fmt.Errorf("%w: ...") dan dipetakan ke HTTP status di handler.
var (
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrInvalidPeriod      = errors.New("periode tidak valid")
	ErrForbidden          = errors.New("akses ditolak")
	ErrValidation         = errors.New("data tidak valid")
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrConflict           = errors.New("data sudah ada")
)
