package compare

import (
	"fmt"

	"github.com/ukpay/takehome/internal/domain"
)

// ProfileVariant defines the interface for all what-if adjustments.
// Variants are small operations that modify a financial profile in
// predictable ways, enabling side-by-side scenario comparison and
// interactive UX.
type ProfileVariant interface {
	// Apply returns a modified copy of the base profile.
	// Returns an error if the adjustment cannot be applied.
	Apply(base domain.UserFinancialProfile) (domain.UserFinancialProfile, error)

	// Name returns a short identifier for this variant (e.g. "set_pension").
	Name() string

	// Description returns a human-readable description of what this variant does.
	Description() string

	// Validate checks if the variant parameters are valid without applying it.
	Validate(base domain.UserFinancialProfile) error
}

// VariantError represents an error that occurred while building or
// applying a variant.
type VariantError struct {
	VariantName string
	Operation   string
	Reason      string
	Err         error
}

func (e *VariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("variant %s (%s): %s: %v", e.VariantName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("variant %s (%s): %s", e.VariantName, e.Operation, e.Reason)
}

func (e *VariantError) Unwrap() error {
	return e.Err
}

// NewVariantError creates a new VariantError.
func NewVariantError(variantName, operation, reason string, err error) error {
	return &VariantError{
		VariantName: variantName,
		Operation:   operation,
		Reason:      reason,
		Err:         err,
	}
}
