package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukpay/takehome/internal/domain"
)

// InputParser handles parsing of profile and policy files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads a financial profile from a YAML file
func (ip *InputParser) LoadProfile(filename string) (*domain.UserFinancialProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	profile, err := ip.ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", filename, err)
	}
	return profile, nil
}

// ParseProfile decodes and validates profile YAML. A missing student loan
// plan defaults to "No Plan".
func (ip *InputParser) ParseProfile(data []byte) (*domain.UserFinancialProfile, error) {
	var profile domain.UserFinancialProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	profile.StudentLoanPlan = profile.PlanOrDefault()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// LoadPolicy loads a tax policy from a YAML file
func (ip *InputParser) LoadPolicy(filename string) (*domain.TaxPolicy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	policy, err := ip.ParsePolicy(data)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", filename, err)
	}
	return policy, nil
}

// ParsePolicy decodes and validates policy YAML. A missing weeks_per_year
// falls back to the default factor.
func (ip *InputParser) ParsePolicy(data []byte) (*domain.TaxPolicy, error) {
	var policy domain.TaxPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if policy.WeeksPerYear.IsZero() {
		policy.WeeksPerYear = domain.DefaultWeeksPerYear
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}
	return &policy, nil
}
