package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ukpay/takehome/internal/config"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [profile-file]",
	Short: "Explore take-home pay interactively",
	Long: `Open an interactive explorer where salary, pension and salary
sacrifice move on sliders and the deduction statement updates live.
Without a profile file the explorer starts from a £30,000 salary.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile := domain.UserFinancialProfile{GrossSalary: decimal.NewFromInt(30000)}
		if len(args) == 1 {
			parser := config.NewInputParser()
			loaded, err := parser.LoadProfile(args[0])
			if err != nil {
				log.Fatal(err)
			}
			profile = *loaded
		}

		policy := loadPolicy(cmd)

		p := tea.NewProgram(tui.NewModel(profile, policy), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running TUI: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tuiCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(tuiCmd)
}
