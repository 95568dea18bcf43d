package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukpay/takehome/internal/compare"
	"github.com/ukpay/takehome/internal/config"
)

var compareCmd = &cobra.Command{
	Use:   "compare [profile-file]",
	Short: "Compare take-home pay under alternative deductions",
	Long: `Compare a profile's take-home pay against what-if variants.

Examples:
  takehome compare profile.yaml --with pension=10,salary+5000
  takehome compare profile.yaml --with "plan=Plan 2",sacrifice=150 --format csv
  takehome compare --list-variants
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listVariants, _ := cmd.Flags().GetBool("list-variants")
		if listVariants {
			fmt.Print(compare.VariantHelp())
			return
		}

		if len(args) == 0 {
			log.Fatal("profile file required for comparison (use --list-variants to see the grammar)")
		}
		inputFile := args[0]

		withStr, _ := cmd.Flags().GetString("with")
		if withStr == "" {
			log.Fatal("--with flag is required to specify variants (or use --list-variants)")
		}
		specs := compare.ParseSpecList(withStr)
		if len(specs) == 0 {
			log.Fatal("no valid variants specified in --with flag")
		}

		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(inputFile)
		if err != nil {
			log.Fatal(err)
		}
		policy := loadPolicy(cmd)

		engine := compare.NewCompareEngine(policy)
		compSet, err := engine.Compare(*profile, specs)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}

		// Set profile path for display
		compSet.ProfilePath = inputFile

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(compSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(compSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(compSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

func init() {
	compareCmd.Flags().String("with", "", "Comma-separated variants to compare (required)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("list-variants", false, "List the variant grammar and examples")
	compareCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(compareCmd)
}
