package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type ForecastProvider interface {
	GetForecast(ctx context.Context, category iqvia.Category, kind iqvia.Kind, zipCode string) (iqvia.Payload, error)
	GetHTTPClient() *http.Client
}

type iqviaProvider struct {
	pollenBaseURL string
	asthmaBaseURL string
	client        *http.Client
	logger        zerolog.Logger
}

// NewForecastProvider returns a provider backed by the IQVIA APIs. Empty base
// URLs fall back to the public hosts.
func NewForecastProvider(timeout time.Duration, pollenBaseURL, asthmaBaseURL string, logger zerolog.Logger) ForecastProvider {
	return &iqviaProvider{
		pollenBaseURL: pollenBaseURL,
		asthmaBaseURL: asthmaBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *iqviaProvider) GetForecast(ctx context.Context, category iqvia.Category, kind iqvia.Kind, zipCode string) (iqvia.Payload, error) {
	client, err := iqvia.NewClient(zipCode,
		iqvia.WithHTTPClient(p.client),
		iqvia.WithPollenBaseURL(p.pollenBaseURL),
		iqvia.WithAsthmaBaseURL(p.asthmaBaseURL),
		iqvia.WithLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}

	return client.Forecast(ctx, category, kind)
}

func (p *iqviaProvider) GetHTTPClient() *http.Client {
	return p.client
}
