package forecastquery

import (
	"time"
)

type ForecastQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ZIPCode      string    `json:"zip_code" gorm:"column:zip_code;index:idx_zip_code;index:idx_zip_code_created_at"`
	Category     string    `json:"category" gorm:"column:category"`
	Kind         string    `json:"kind" gorm:"column:kind"`
	RequestCount int       `json:"request_count" gorm:"column:request_count"`
	InvalidZIP   bool      `json:"invalid_zip" gorm:"column:invalid_zip"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_zip_code_created_at"`
}

func (ForecastQuery) TableName() string {
	return "forecast_queries"
}
