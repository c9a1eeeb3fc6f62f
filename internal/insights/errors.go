package insights

import "errors"

var (
	ErrInvalidPeriodAnchor    = errors.New("invalid period anchor")
	ErrInvalidSimulationInput = errors.New("invalid simulation input")
	ErrUnsupportedCategory    = errors.New("unsupported category")
)
