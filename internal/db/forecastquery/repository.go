package forecastquery

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogForecastQuery(zipCode, category, kind string, requestCount int, invalidZIP bool) error
	GetRecentForecastQuery(zipCode string) (*ForecastQuery, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) LogForecastQuery(zipCode, category, kind string, requestCount int, invalidZIP bool) error {
	query := ForecastQuery{
		ZIPCode:      zipCode,
		Category:     category,
		Kind:         kind,
		RequestCount: requestCount,
		InvalidZIP:   invalidZIP,
		CreatedAt:    time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *ForecastSQLRepository) GetRecentForecastQuery(zipCode string) (*ForecastQuery, error) {
	var query ForecastQuery
	err := r.db.Where("zip_code = ?", zipCode).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
