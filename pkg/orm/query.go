// Package orm provides small query helpers layered on GORM.
package orm

import (
	"gorm.io/gorm"
)

// Page is the pagination response shape used by every listing endpoint.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	PageNumber    int         `json:"pageNumber"`
	PageSize      int         `json:"pageSize"`
}

// PageOf assembles a Page from an already-fetched slice and total count.
// Page numbering is zero-based.
func PageOf(content interface{}, total int64, page, size int) Page {
	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		PageNumber:    page,
		PageSize:      size,
	}
}

// Paginate runs a count plus an offset/limit find over the prepared query,
// filling dest with the page slice and returning the unpaged total.
func Paginate(query *gorm.DB, page, size int, dest interface{}) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	if err := query.Offset(page * size).Limit(size).Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}
