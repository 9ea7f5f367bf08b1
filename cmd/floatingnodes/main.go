package main

import (
	"fmt"
	"log"
	"os"

	"floating-nodes/internal/app"
	"floating-nodes/internal/nodes"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	frames int
	fps    int
)

func main() {
	opts := app.NewOptions()

	rootCmd := &cobra.Command{
		Use:   "floatingnodes",
		Short: "drifting nodes joined by proximity lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			log.Printf("starting %dx%d field with %d nodes (seed %d)", cfg.Width, cfg.Height, cfg.NodeCount(), opts.Seed)
			return app.Run(cfg, opts)
		},
	}
	opts.Bind(rootCmd.PersistentFlags())

	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "print the default configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nodes.DefaultConfig().WriteYAML(cmd.OutOrStdout())
		},
	}

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "run headlessly and plot connections per frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			return runSim(cmd, cfg, opts.Seed)
		},
	}
	simCmd.Flags().IntVar(&frames, "frames", 300, "frames to simulate")
	simCmd.Flags().IntVar(&fps, "fps", 60, "frames per simulated second")

	rootCmd.AddCommand(defaultsCmd, simCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, cfg nodes.Config, seed int64) error {
	stats, err := app.Simulate(cfg, seed, frames, fps)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintln(out, "no frames simulated")
		return nil
	}

	series := make([]float64, len(stats))
	var total, peak, updates int
	for i, s := range stats {
		series[i] = float64(s.Connections)
		total += s.Connections
		peak = max(peak, s.Connections)
		if s.MovementUpdated {
			updates++
		}
	}

	fmt.Fprintln(out, asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("connections per frame"),
	))
	fmt.Fprintf(out, "\nframes=%d nodes=%d connections avg=%.1f max=%d movement updates=%d\n",
		len(stats), stats[len(stats)-1].Nodes, float64(total)/float64(len(stats)), peak, updates)
	return nil
}
