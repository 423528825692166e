package iqvia

import (
	"context"
	"fmt"
)

// Category selects the service: allergens (pollen.com) or asthma.
type Category string

const (
	CategoryAllergens Category = "allergens"
	CategoryAsthma    Category = "asthma"
)

// Kind selects the forecast window.
type Kind string

const (
	KindCurrent  Kind = "current"
	KindExtended Kind = "extended"
	KindHistoric Kind = "historic"
	KindOutlook  Kind = "outlook"
)

// ParseCategory maps a name to a Category or ErrUnsupportedForecast.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryAllergens, CategoryAsthma:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrUnsupportedForecast, s)
}

// ParseKind maps a name to a Kind or ErrUnsupportedForecast.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCurrent, KindExtended, KindHistoric, KindOutlook:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrUnsupportedForecast, s)
}

// Supports reports whether the service publishes kind for category.
func Supports(category Category, kind Kind) bool {
	switch category {
	case CategoryAllergens:
		return kind == KindCurrent || kind == KindExtended || kind == KindHistoric || kind == KindOutlook
	case CategoryAsthma:
		return kind == KindCurrent || kind == KindExtended || kind == KindHistoric
	}
	return false
}

// Forecast calls the endpoint matching category and kind.
func (c *Client) Forecast(ctx context.Context, category Category, kind Kind) (Payload, error) {
	switch category {
	case CategoryAllergens:
		switch kind {
		case KindCurrent:
			return c.Allergens.Current(ctx)
		case KindExtended:
			return c.Allergens.Extended(ctx)
		case KindHistoric:
			return c.Allergens.Historic(ctx)
		case KindOutlook:
			return c.Allergens.Outlook(ctx)
		}
	case CategoryAsthma:
		switch kind {
		case KindCurrent:
			return c.Asthma.Current(ctx)
		case KindExtended:
			return c.Asthma.Extended(ctx)
		case KindHistoric:
			return c.Asthma.Historic(ctx)
		}
	}

	return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedForecast, category, kind)
}
