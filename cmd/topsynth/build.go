package main

import (
	"path/filepath"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/check"
	"github.com/rmera/topsynth/snapshot"
	"github.com/rmera/topsynth/top"
	"github.com/spf13/cobra"
)

var (
	buildOut string
	buildITP string
	buildBox float64
	molName  string
)

var buildCmd = &cobra.Command{
	Use:   "build DIR",
	Short: "Build the initial simulation snapshot for the structure in DIR",
	Long: "Reads " + topsynth.LabelsFile + " and " + topsynth.CoordsFile + " from DIR, synthesizes the topology\n" +
		"and writes it, with the coordinates, as a snapshot file. Optionally writes a Gromacs itp file.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		F, err := loadFF()
		if err != nil {
			return err
		}
		s, err := topsynth.ReadStructure(args[0])
		if err != nil {
			return err
		}
		logger.Info("read structure", "dir", args[0], "atoms", s.Len())
		T, err := topsynth.Synthesize(s.Labels, F)
		if err != nil {
			return err
		}
		logger.Info("synthesized topology", "ff", F.Name, "bonds", T.Bonds().Len(),
			"angles", T.Angles().Len(), "dihedrals", T.Dihedrals().Len())
		for _, d := range check.Duplicates(T) {
			logger.Warn("duplicate entity", "kind", d.Kind, "atoms", d.Atoms, "first", d.First, "second", d.Second)
		}
		S, err := snapshot.New(T, F, s.Coords, snapshot.CubicBox(buildBox))
		if err != nil {
			return err
		}
		out := buildOut
		if out == "" {
			out = filepath.Join(args[0], "initialization"+snapshot.Extension)
		}
		if err := snapshot.WriteFile(out, S); err != nil {
			return err
		}
		logger.Info("wrote snapshot", "file", out, "particles", S.N, "mass", S.TotalMass(), "charge", S.NetCharge())
		if buildITP != "" {
			if err := top.WriteFile(buildITP, T, top.Options{Name: molName}); err != nil {
				return err
			}
			logger.Info("wrote gromacs topology", "file", buildITP)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "snapshot file (default DIR/initialization"+snapshot.Extension+")")
	buildCmd.Flags().StringVar(&buildITP, "itp", "", "also write a Gromacs molecule topology to this file")
	buildCmd.Flags().Float64Var(&buildBox, "box", snapshot.DefaultBox, "edge of the cubic simulation box")
	buildCmd.Flags().StringVar(&molName, "name", "MOL", "molecule name for the itp file")
	rootCmd.AddCommand(buildCmd)
}
