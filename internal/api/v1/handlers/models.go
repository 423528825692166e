package handlers

import (
	"time"

	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type ForecastResponse struct {
	ZIPCode  string        `json:"zip"`
	Category string        `json:"category"`
	Kind     string        `json:"kind"`
	Cached   bool          `json:"cached"`
	Data     iqvia.Payload `json:"data"`
}

type QueryResponse struct {
	ZIPCode      string    `json:"zip"`
	Category     string    `json:"category"`
	Kind         string    `json:"kind"`
	RequestCount int       `json:"request_count"`
	InvalidZIP   bool      `json:"invalid_zip"`
	CreatedAt    time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
