package logs_querying

import (
	"net/url"

	"logquery/internal/features/filters"
)

// QueryParams maps a field's wire name to its non-empty value.
type QueryParams map[string]string

// DeriveParams keeps exactly the fields whose value is a non-empty string.
// Whitespace-only values count as set.
func DeriveParams(snapshot filters.Snapshot) QueryParams {
	params := QueryParams{}
	for _, field := range filters.AllFilterFields {
		if value := snapshot.Value(field); value != "" {
			params[string(field)] = value
		}
	}

	return params
}

// Encode renders the params as a query string with sorted keys.
func (p QueryParams) Encode() string {
	values := url.Values{}
	for key, value := range p {
		values.Set(key, value)
	}

	return values.Encode()
}

func (p QueryParams) clone() QueryParams {
	cloned := make(QueryParams, len(p))
	for key, value := range p {
		cloned[key] = value
	}

	return cloned
}
