package cache

import (
	"context"
	"time"

	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

// ForecastCacheData is what gets stored per forecast key. An entry with
// InvalidZIP set records that the service did not know the ZIP code.
type ForecastCacheData struct {
	Payload    iqvia.Payload `json:"payload,omitempty"`
	InvalidZIP bool          `json:"invalid_zip,omitempty"`
	Reason     string        `json:"reason,omitempty"`
}

type Cache interface {
	Get(ctx context.Context, key string) (*ForecastCacheData, bool, error)
	Set(ctx context.Context, key string, data *ForecastCacheData, ttl time.Duration) error
}
