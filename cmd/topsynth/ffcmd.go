package main

import (
	"fmt"
	"strings"

	"github.com/rmera/topsynth/ff"
	"github.com/spf13/cobra"
)

var (
	ffDump   bool
	ffLabels bool
)

var ffCmd = &cobra.Command{
	Use:   "ff",
	Short: "Summarize the force field in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if ffDump {
			_, err := w.Write(ff.DefaultYAML())
			return err
		}
		F, err := loadFF()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "force field %q: %d particle types, %d labels", F.Name, len(F.Particles()), F.Registry().Len())
		for _, k := range ff.Kinds {
			fmt.Fprintf(w, ", %d %s", F.Table(k).Len(), k.Plural())
		}
		fmt.Fprintln(w)
		if ffLabels {
			for _, l := range F.Registry().Labels() {
				t, _ := F.Registry().Template(l)
				fmt.Fprintf(w, "%-6s %-5s %s\n", l, t.Type, counts(t))
			}
		}
		return nil
	},
}

func counts(t *ff.Template) string {
	s := make([]string, 0, ff.NKinds)
	for _, k := range ff.Kinds {
		if n := len(t.Offsets(k)); n > 0 {
			s = append(s, fmt.Sprintf("%d %s", n, k.Plural()))
		}
	}
	return strings.Join(s, ", ")
}

func init() {
	ffCmd.Flags().BoolVar(&ffDump, "dump", false, "print the built-in force field, as YAML, to use as a starting point")
	ffCmd.Flags().BoolVar(&ffLabels, "labels", false, "list the atom labels and their templates")
	rootCmd.AddCommand(ffCmd)
}
