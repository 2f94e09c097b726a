package main

import (
	"fmt"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/check"
	"github.com/spf13/cobra"
)

var (
	checkScale float64
	checkTol   float64
	checkPlot  string
	checkBins  int
)

var checkCmd = &cobra.Command{
	Use:   "check DIR",
	Short: "Synthesize the topology for DIR and report problems with it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		F, err := loadFF()
		if err != nil {
			return err
		}
		s, err := topsynth.ReadStructure(args[0])
		if err != nil {
			return err
		}
		T, err := topsynth.Synthesize(s.Labels, F)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, T)
		mols := check.Molecules(T)
		fmt.Fprintf(w, "%d molecules\n", len(mols))
		problems := 0
		for _, d := range check.Duplicates(T) {
			fmt.Fprintln(w, "duplicate:", d)
			problems++
		}
		for _, u := range check.UnbondedTerms(T) {
			fmt.Fprintln(w, "unbonded:", u)
			problems++
		}
		G, err := check.BondGeometry(T, s.Coords, checkScale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "bond length deviation: mean %.5f stddev %.5f max %.5f\n", G.Mean(), G.StdDev(), G.MaxAbs())
		for _, d := range G.Outliers(checkTol) {
			fmt.Fprintln(w, "stretched:", d)
			problems++
		}
		if checkPlot != "" {
			if err := check.PlotDeviations(G, checkPlot, checkBins); err != nil {
				return err
			}
			logger.Info("saved deviation histogram", "file", checkPlot)
		}
		if problems > 0 {
			return fmt.Errorf("%d problems found", problems)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Float64Var(&checkScale, "scale", 0.1, "factor to bring coordinates to force-field units (0.1 for Angstrom to nm)")
	checkCmd.Flags().Float64Var(&checkTol, "tolerance", 0.05, "largest acceptable bond length deviation, in force-field units")
	checkCmd.Flags().StringVar(&checkPlot, "plot", "", "save a histogram of bond length deviations to this file (png, svg, pdf...)")
	checkCmd.Flags().IntVar(&checkBins, "bins", 20, "histogram bins")
	rootCmd.AddCommand(checkCmd)
}
