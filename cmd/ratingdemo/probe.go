package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func probeCmd() *cobra.Command {
	var (
		configPath string
		barName    string
		x          float64
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the rating a press at x would report",
		Long: `Probe presses a bar of the sheet at a bar-local x coordinate and
prints the quantized rating the bar reports, followed by the bar's
accessibility label for that rating.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSheet(configPath)
			if err != nil {
				return err
			}
			rating, err := s.Probe(barName, x)
			if err != nil {
				return err
			}
			bar, err := s.Bar(barName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v (%s)\n", barName, rating, bar.Description(rating))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Sheet file (YAML); built-in sample when empty")
	cmd.Flags().StringVar(&barName, "bar", "stars", "Bar name")
	cmd.Flags().Float64Var(&x, "x", 0, "Bar-local x coordinate of the press")
	return cmd
}
