package iqvia

import (
	"context"
	"net/http"
)

// Asthma groups the asthmaforecast.com endpoints.
type Asthma struct {
	baseURL         string
	forecastRequest requestFunc
}

// Current returns the asthma forecast for yesterday, today and tomorrow.
func (a *Asthma) Current(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/current/asthma")
}

// Extended returns the five day asthma forecast.
func (a *Asthma) Extended(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/extended/asthma")
}

// Historic returns the last 30 days of asthma indices.
func (a *Asthma) Historic(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/historic/asthma")
}
