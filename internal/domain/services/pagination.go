package services

import (
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// normalizeListQuery aplica los valores por defecto de página y tamaño.
// Un tamaño fuera de la lista permitida vuelve al valor por defecto de
// la vista, igual que hacían las listas originales.
func normalizeListQuery(q *models.ListQuery, defaultPageSize int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if !models.ValidPageSize(q.PageSize) {
		q.PageSize = defaultPageSize
	}
}

// paginate cuenta el total y devuelve la página pedida
func paginate(query *gorm.DB, page, pageSize int, out interface{}) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(out).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// sortExpr traduce un parámetro de orden ("name" o "-name") a una
// expresión ORDER BY usando solo columnas de la lista permitida.
// Un valor fuera de la lista cae al orden por defecto.
func sortExpr(sort string, allowed map[string]string, defaultExpr string) string {
	if sort == "" {
		return defaultExpr
	}

	desc := false
	if sort[0] == '-' {
		desc = true
		sort = sort[1:]
	}

	column, ok := allowed[sort]
	if !ok {
		return defaultExpr
	}
	if desc {
		return column + " DESC"
	}
	return column
}
