package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseVariant builds a ProfileVariant from a spec string. Supported forms:
//
//	pension=N      pension contribution of N percent
//	sacrifice=N    salary sacrifice of £N a month
//	plan=NAME      student loan plan NAME
//	salary=N       gross salary of £N
//	salary+N       gross salary raised by £N
//	salary-N       gross salary reduced by £N
func ParseVariant(spec string) (ProfileVariant, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, NewVariantError("parse", "parse", "variant spec cannot be empty", nil)
	}

	if strings.Contains(trimmed, "=") {
		parts := strings.SplitN(trimmed, "=", 2)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch key {
		case "pension":
			pct, err := decimal.NewFromString(value)
			if err != nil {
				return nil, NewVariantError("set_pension", "parse", fmt.Sprintf("invalid percentage %q", value), err)
			}
			return &SetPensionPercent{Percent: pct}, nil
		case "sacrifice":
			monthly, err := decimal.NewFromString(value)
			if err != nil {
				return nil, NewVariantError("set_salary_sacrifice", "parse", fmt.Sprintf("invalid amount %q", value), err)
			}
			return &SetSalarySacrifice{Monthly: monthly}, nil
		case "plan":
			return &SetStudentLoanPlan{Plan: value}, nil
		case "salary":
			salary, err := decimal.NewFromString(value)
			if err != nil {
				return nil, NewVariantError("set_salary", "parse", fmt.Sprintf("invalid amount %q", value), err)
			}
			return &SetGrossSalary{Salary: salary}, nil
		default:
			return nil, NewVariantError("parse", "parse", fmt.Sprintf("unknown setting %q", key), nil)
		}
	}

	if strings.HasPrefix(trimmed, "salary+") {
		delta, err := decimal.NewFromString(strings.TrimPrefix(trimmed, "salary+"))
		if err != nil {
			return nil, NewVariantError("adjust_salary", "parse", fmt.Sprintf("invalid adjustment %q", trimmed), err)
		}
		return &AdjustGrossSalary{Delta: delta}, nil
	}
	if strings.HasPrefix(trimmed, "salary-") {
		delta, err := decimal.NewFromString(strings.TrimPrefix(trimmed, "salary-"))
		if err != nil {
			return nil, NewVariantError("adjust_salary", "parse", fmt.Sprintf("invalid adjustment %q", trimmed), err)
		}
		return &AdjustGrossSalary{Delta: delta.Neg()}, nil
	}

	return nil, NewVariantError("parse", "parse",
		fmt.Sprintf("unrecognised variant %q, expected key=value or salary+/-amount", trimmed), nil)
}

// ParseSpecList parses a comma-separated list of variant specs
func ParseSpecList(specList string) []string {
	if specList == "" {
		return nil
	}

	parts := strings.Split(specList, ",")
	specs := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			specs = append(specs, trimmed)
		}
	}
	return specs
}

// VariantHelp returns formatted help text for the variant grammar
func VariantHelp() string {
	var sb strings.Builder
	sb.WriteString("Available Variants:\n\n")

	sb.WriteString("Workplace Deductions:\n")
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "pension=N", "Set pension contribution to N% of gross"))
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "sacrifice=N", "Set salary sacrifice to £N a month"))
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "plan=NAME", "Switch the student loan plan (e.g. plan=Plan 2)"))
	sb.WriteString("\n")

	sb.WriteString("Salary:\n")
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "salary=N", "Set gross salary to £N"))
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "salary+N", "Increase gross salary by £N"))
	sb.WriteString(fmt.Sprintf("  %-18s %s\n", "salary-N", "Reduce gross salary by £N"))
	sb.WriteString("\n")

	sb.WriteString("Usage:\n")
	sb.WriteString("  takehome compare profile.yaml --with pension=10,salary+5000\n")
	sb.WriteString("  takehome compare profile.yaml --with \"plan=Plan 2\" --format csv\n")

	return sb.String()
}
