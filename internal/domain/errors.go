package domain

import "errors"

var (
	ErrAirportNotFound   = errors.New("airport not found")
	ErrNoResults         = errors.New("no hotels found")
	ErrNoPlottablePoints = errors.New("no hotel coordinates to plot")
)

// Outcome labels the terminal state of a search, used for metrics and for
// the status field of search responses.
type Outcome string

const (
	OutcomeOK            Outcome = "success"
	OutcomeNoResults     Outcome = "no_results"
	OutcomeNoPlottable   Outcome = "no_plottable_points"
	OutcomeAirportMiss   Outcome = "airport_not_found"
	OutcomeTransportFail Outcome = "transport_error"
)

// OutcomeForErr maps a pipeline error to its outcome label. Anything not
// raised by the pipeline itself counts as a transport failure.
func OutcomeForErr(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNoResults):
		return OutcomeNoResults
	case errors.Is(err, ErrNoPlottablePoints):
		return OutcomeNoPlottable
	case errors.Is(err, ErrAirportNotFound):
		return OutcomeAirportMiss
	default:
		return OutcomeTransportFail
	}
}
