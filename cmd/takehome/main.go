package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/config"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "takehome %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// loadPolicy resolves the tax policy for a command: an explicit --policy
// file, a policy.yaml in the working directory, or the built-in 2024/25
// rules.
func loadPolicy(cmd *cobra.Command) domain.TaxPolicy {
	policyFile, _ := cmd.Flags().GetString("policy")
	if policyFile == "" && fileExists("policy.yaml") {
		policyFile = "policy.yaml"
	}
	if policyFile == "" {
		return domain.UKPolicy2024()
	}

	parser := config.NewInputParser()
	policy, err := parser.LoadPolicy(policyFile)
	if err != nil {
		log.Fatal(err)
	}
	return *policy
}

var rootCmd = &cobra.Command{
	Use:   "takehome",
	Short: "UK take-home pay calculator CLI",
	Long:  "Take-home pay calculator for UK salaries: income tax, National Insurance, pension and salary sacrifice, student loans, and household budgeting",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate take-home pay for a profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		policy := loadPolicy(cmd)

		calc := calculation.NewTakeHomeCalculatorWithPolicy(*profile, policy)
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			calc.SetLogger(simpleCLILogger{})
		}
		result, err := calc.Calculate()
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		if outputPath != "" {
			formatter := output.GetFormatterByName(outputFormat)
			if formatter == nil {
				log.Fatalf("Unknown output format: %s (valid: %s)",
					outputFormat, strings.Join(output.FormatNames(), ", "))
			}
			data, err := formatter.Format(result)
			if err != nil {
				log.Fatal(err)
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outputPath)
			return
		}

		if err := output.GenerateReport(result, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadProfile(inputFile)
		if err != nil {
			log.Fatal(err)
		}
		loadPolicy(cmd)

		fmt.Printf("Profile file %s is valid\n", inputFile)
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, html, pdf)")
	calculateCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of a generated name")
	calculateCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for the deduction pipeline")

	validateCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
