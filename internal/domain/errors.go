package domain

import "errors"

var (
	// ErrPeriodSpec is returned when a PeriodSpec does not carry exactly
	// one period figure.
	ErrPeriodSpec = errors.New("exactly one of annual, monthly, or weekly must be set")

	// ErrInvalidProfile is wrapped by every profile validation failure.
	ErrInvalidProfile = errors.New("invalid financial profile")

	// ErrUnknownPlan is returned when a student loan plan name is not part
	// of the active tax policy.
	ErrUnknownPlan = errors.New("unsupported student loan plan")
)
