package models

import "time"

// BaseModel agrupa los campos comunes de todas las entidades
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListQuery son los parámetros comunes de búsqueda/orden/paginación de las listas
type ListQuery struct {
	Search   string `form:"q"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// PageSizeOptions es la lista permitida de tamaños de página
var PageSizeOptions = []int{5, 10, 15, 25, 50, 100}

// ValidPageSize indica si el tamaño de página está en la lista permitida
func ValidPageSize(size int) bool {
	for _, s := range PageSizeOptions {
		if s == size {
			return true
		}
	}
	return false
}
