package insight

import "errors"

// Insight domain errors
var (
	ErrMissingCompanyScope = errors.New("company_id not found in claims")
	ErrMissingUserScope    = errors.New("user_id not found in claims")
)
