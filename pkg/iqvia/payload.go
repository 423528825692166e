package iqvia

import "context"

// Payload is a forecast document exactly as the service returned it.
type Payload map[string]interface{}

// Location returns the "Location" object, if the document has one.
func (p Payload) Location() (map[string]interface{}, bool) {
	location, ok := p["Location"].(map[string]interface{})
	return location, ok
}

// Periods returns Location.periods, or nil when absent.
func (p Payload) Periods() []interface{} {
	location, ok := p.Location()
	if !ok {
		return nil
	}

	periods, _ := location["periods"].([]interface{})
	return periods
}

// Trend is only present on allergen outlooks.
func (p Payload) Trend() string {
	trend, _ := p["Trend"].(string)
	return trend
}

// raiseOnInvalidZIP wraps a request function so that a response whose
// location carries no forecast periods is reported as an invalid ZIP.
func raiseOnInvalidZIP(zipCode string, request requestFunc) requestFunc {
	return func(ctx context.Context, method, endpoint string) (Payload, error) {
		data, err := request(ctx, method, endpoint)
		if err != nil {
			return nil, err
		}

		if len(data.Periods()) == 0 {
			return nil, &InvalidZIPError{ZIP: zipCode, Reason: "no data returned for ZIP code"}
		}

		return data, nil
	}
}
