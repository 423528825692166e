package iqvia

import (
	"context"
	"net/http"
)

// Allergens groups the pollen.com endpoints.
type Allergens struct {
	baseURL         string
	request         requestFunc
	forecastRequest requestFunc
}

// Current returns the pollen forecast for yesterday, today and tomorrow.
func (a *Allergens) Current(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/current/pollen")
}

// Extended returns the five day pollen forecast.
func (a *Allergens) Extended(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/extended/pollen")
}

// Historic returns the last 30 days of pollen indices.
func (a *Allergens) Historic(ctx context.Context) (Payload, error) {
	return a.forecastRequest(ctx, http.MethodGet, a.baseURL+"/historic/pollen")
}

// Outlook has no Location block; an unknown ZIP is answered with a 404.
func (a *Allergens) Outlook(ctx context.Context) (Payload, error) {
	return a.request(ctx, http.MethodGet, a.baseURL+"/outlook")
}
