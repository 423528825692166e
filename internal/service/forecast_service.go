package service

import (
	"context"
	"errors"
	"fmt"

	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

var (
	ErrEmptyZIP = errors.New("zip code cannot be empty")
	ErrShutdown = errors.New("forecast aggregator is shutting down")
)

type ForecastRequest struct {
	Category iqvia.Category
	Kind     iqvia.Kind
	ZIPCode  string
}

// Key identifies requests that can share one upstream call.
func (r ForecastRequest) Key() string {
	return fmt.Sprintf("%s:%s:%s", r.Category, r.Kind, r.ZIPCode)
}

type ForecastResponse struct {
	ZIPCode  string         `json:"zip"`
	Category iqvia.Category `json:"category"`
	Kind     iqvia.Kind     `json:"kind"`
	Data     iqvia.Payload  `json:"data,omitempty"`
	Cached   bool           `json:"cached"`
	Err      error          `json:"-"`
}

type ForecastService interface {
	GetForecast(ctx context.Context, category, kind, zipCode string) (ForecastResponse, error)
}

type forecastService struct {
	aggregator ForecastRequestAggregator
}

func NewForecastService(aggregator ForecastRequestAggregator) ForecastService {
	return &forecastService{
		aggregator: aggregator,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, category, kind, zipCode string) (ForecastResponse, error) {
	if zipCode == "" {
		return ForecastResponse{}, ErrEmptyZIP
	}

	parsedCategory, err := iqvia.ParseCategory(category)
	if err != nil {
		return ForecastResponse{}, err
	}

	parsedKind, err := iqvia.ParseKind(kind)
	if err != nil {
		return ForecastResponse{}, err
	}

	if !iqvia.Supports(parsedCategory, parsedKind) {
		return ForecastResponse{}, fmt.Errorf("%w: %s %s", iqvia.ErrUnsupportedForecast, parsedCategory, parsedKind)
	}

	// reject locally so malformed ZIPs never occupy a queue or cache slot
	if !iqvia.IsValidZIP(zipCode) {
		return ForecastResponse{}, &iqvia.InvalidZIPError{ZIP: zipCode, Reason: "must be 5 digits"}
	}

	responseChan, err := s.aggregator.AddRequest(ctx, ForecastRequest{
		Category: parsedCategory,
		Kind:     parsedKind,
		ZIPCode:  zipCode,
	})
	if err != nil {
		return ForecastResponse{}, err
	}

	select {
	case response, ok := <-responseChan:
		if !ok {
			return ForecastResponse{}, ErrShutdown
		}
		if response.Err != nil {
			return response, response.Err
		}
		return response, nil
	case <-ctx.Done():
		return ForecastResponse{}, ctx.Err()
	}
}
