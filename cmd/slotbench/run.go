package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/differental/slotlist/internal/benchrun"
)

var (
	runCount      int
	runPayload    int
	runContainers []string
)

// defaultProfiles are the workloads run when no --count is given: a small
// number of large elements and a large number of bare words.
var defaultProfiles = []benchrun.Config{
	{Count: 20, PayloadWords: 50000},
	{Count: 100000, PayloadWords: 0},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the comparison workloads",
	Long: `Run builds each selected container with the same elements, then times
midpoint access and midpoint removal. Without --count, two canonical
workloads are run: 20 large elements and 100,000 bare words.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := defaultProfiles
		if cmd.Flags().Changed("count") {
			profiles = []benchrun.Config{{Count: runCount, PayloadWords: runPayload}}
		}

		type workload struct {
			Config  benchrun.Config   `json:"config"`
			Results []benchrun.Result `json:"results"`
		}
		var workloads []workload

		for _, cfg := range profiles {
			slog.Debug("running workload", "count", cfg.Count, "payload_words", cfg.PayloadWords)
			results, err := benchrun.Run(cfg, runContainers)
			if err != nil {
				return err
			}
			workloads = append(workloads, workload{Config: cfg, Results: results})
		}

		if jsonOut {
			return printJSON(os.Stdout, workloads)
		}
		for _, wl := range workloads {
			if err := benchrun.WriteText(os.Stdout, wl.Config, wl.Results); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&runCount, "count", "n", 100000, "Number of elements per container")
	runCmd.Flags().IntVarP(&runPayload, "payload-words", "p", 0, "Per-element heap payload in 8-byte words")
	runCmd.Flags().StringSliceVarP(&runContainers, "containers", "c", nil,
		"Containers to run (slice, stdlist, slotlist); default all")
	rootCmd.AddCommand(runCmd)
}
