// SPDX-License-Identifier: MIT

package openapi_server

type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	// highest trail rating to use, the service default if empty
	MaxRating string `json:"maxRating,omitempty"`
	// skip closed trails, the service default if not set
	ExcludeClosed *bool `json:"excludeClosed,omitempty"`
	// algorithm for the exports, a-star if empty
	Algorithm string `json:"algorithm,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"start": obj.Start,
		"end":   obj.End,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
