package main

import (
	"fmt"
	"log"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ukpay/takehome/internal/config"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/solver"
)

var targetCmd = &cobra.Command{
	Use:   "target [profile-file]",
	Short: "Find the gross salary required to hit an income target",
	Long: `Search for the gross salary that produces a target income, holding the
profile's pension, salary sacrifice, student loan plan and outgoings fixed.

Examples:
  takehome target profile.yaml --net 32000
  takehome target profile.yaml --spendable 2000 --period monthly
  takehome target profile.yaml --after-expenses 350 --period weekly --format json
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(inputFile)
		if err != nil {
			log.Fatal(err)
		}
		policy := loadPolicy(cmd)

		goal, target, err := targetFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}

		period, _ := cmd.Flags().GetString("period")
		annualTarget, err := annualise(target, period, policy.WeeksPerYear)
		if err != nil {
			log.Fatal(err)
		}

		options := solver.DefaultSolverOptions()
		if tolerance, _ := cmd.Flags().GetFloat64("tolerance"); tolerance > 0 {
			options.Tolerance = decimal.NewFromFloat(tolerance)
		}

		s := solver.NewSolver(policy, options)
		result, err := s.RequiredGross(*profile, solver.Request{Goal: goal, Target: annualTarget})
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "json":
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Println(string(data))

		case "table", "console", "":
			formatter := &solver.TableFormatter{}
			fmt.Print(formatter.Format(result))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, json)", outputFormat)
		}
	},
}

// targetFromFlags reads the three goal flags, requiring exactly one.
func targetFromFlags(cmd *cobra.Command) (solver.Goal, decimal.Decimal, error) {
	net, _ := cmd.Flags().GetFloat64("net")
	spendable, _ := cmd.Flags().GetFloat64("spendable")
	afterExpenses, _ := cmd.Flags().GetFloat64("after-expenses")

	type candidate struct {
		goal  solver.Goal
		value float64
	}
	var picked []candidate
	if cmd.Flags().Changed("net") {
		picked = append(picked, candidate{solver.GoalNetIncome, net})
	}
	if cmd.Flags().Changed("spendable") {
		picked = append(picked, candidate{solver.GoalSpendable, spendable})
	}
	if cmd.Flags().Changed("after-expenses") {
		picked = append(picked, candidate{solver.GoalAfterExpenses, afterExpenses})
	}

	if len(picked) == 0 {
		return "", decimal.Zero, fmt.Errorf("one of --net, --spendable or --after-expenses is required")
	}
	if len(picked) > 1 {
		return "", decimal.Zero, fmt.Errorf("--net, --spendable and --after-expenses are mutually exclusive")
	}
	return picked[0].goal, decimal.NewFromFloat(picked[0].value), nil
}

// annualise converts a target quoted per period into a yearly figure.
func annualise(target decimal.Decimal, period string, weeksPerYear decimal.Decimal) (decimal.Decimal, error) {
	switch strings.ToLower(period) {
	case "annual", "yearly", "":
		return target, nil
	case "monthly":
		return target.Mul(domain.MonthsPerYear), nil
	case "weekly":
		return target.Mul(weeksPerYear), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown period: %s (valid: annual, monthly, weekly)", period)
	}
}

func init() {
	targetCmd.Flags().Float64("net", 0, "Target net income")
	targetCmd.Flags().Float64("spendable", 0, "Target spendable income (net income less bills)")
	targetCmd.Flags().Float64("after-expenses", 0, "Target spendable income after weekly expenses")
	targetCmd.Flags().String("period", "annual", "Period the target is quoted in (annual, monthly, weekly)")
	targetCmd.Flags().Float64("tolerance", 0, "Convergence tolerance in pounds (default 0.50)")
	targetCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	targetCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(targetCmd)
}
