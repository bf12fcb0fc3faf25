package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/phugoid/internal/config"
	"github.com/san-kum/phugoid/internal/export"
	"github.com/san-kum/phugoid/internal/flight"
	"github.com/san-kum/phugoid/internal/storage"
	"github.com/san-kum/phugoid/internal/viz"
)

var (
	dataDir string
	zt      float64
	z0      float64
	theta0  float64
	steps   int
	ds      float64
	// Config file
	configFile string
	// Preset name
	preset string
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
	// Terminal plot size
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phugoid",
		Short: "glider flight-path tracer (Lanchester phugoid model)",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".phugoid", "data directory")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace a flight path and save the run",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&zt, "zt", config.DefaultZt, "trim depth")
	traceCmd.Flags().Float64Var(&z0, "z0", config.DefaultZ0, "initial depth")
	traceCmd.Flags().Float64Var(&theta0, "theta0", config.DefaultTheta0, "initial heading (radians)")
	traceCmd.Flags().IntVar(&steps, "steps", flight.DefaultSteps, "points in the path")
	traceCmd.Flags().Float64Var(&ds, "ds", flight.DefaultDs, "arc-length increment per step")
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset initial conditions")
	traceCmd.Flags().StringVar(&svgOut, "svg", "", "also write an svg figure to this path")
	traceCmd.Flags().IntVar(&plotWidth, "plot-width", 70, "terminal plot width (cells)")
	traceCmd.Flags().IntVar(&plotHeight, "plot-height", 18, "terminal plot height (cells)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "plot-width", 70, "terminal plot width (cells)")
	plotCmd.Flags().IntVar(&plotHeight, "plot-height", 18, "terminal plot height (cells)")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "write an svg figure for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "flight.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "figure width (px)")
	svgCmd.Flags().IntVar(&svgHeight, "height", 480, "figure height (px)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run coordinates to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s zt=%.1f z0=%.1f theta0=%.2f\n", name, cfg.Zt, cfg.Z0, cfg.Theta0)
			}
			return nil
		},
	}

	rootCmd.AddCommand(traceCmd, listCmd, plotCmd, svgCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrace(cmd *cobra.Command, args []string) error {
	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		zt = cfg.Zt
		z0 = cfg.Z0
		theta0 = cfg.Theta0
	}

	// Load config file if specified (CLI flags override config)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("zt") {
			zt = cfg.Zt
		}
		if !cmd.Flags().Changed("z0") {
			z0 = cfg.Z0
		}
		if !cmd.Flags().Changed("theta0") {
			theta0 = cfg.Theta0
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("ds") {
			ds = cfg.Ds
		}
	}

	path, err := flight.Trace(flight.Params{
		Zt:     zt,
		Z0:     z0,
		Theta0: theta0,
		Steps:  steps,
		Ds:     ds,
	})
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(path)
	if err != nil {
		return err
	}

	sum := path.Summarize()
	fmt.Println(viz.PlotPath(path, plotWidth, plotHeight))
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("run id:"), viz.ValueStyle.Render(runID))
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("C:"), viz.ValueStyle.Render(fmt.Sprintf("%.6f", path.C)))
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("final point:"),
		viz.ValueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", sum.FinalX, sum.FinalZ)))
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("depth range:"),
		viz.ValueStyle.Render(fmt.Sprintf("[%.2f, %.2f]", sum.MinZ, sum.MaxZ)))
	if sum.Degenerate > 0 {
		fmt.Println(viz.WarnStyle.Render(
			fmt.Sprintf("warning: %d of %d points went non-finite", sum.Degenerate, path.Steps)))
	}

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.PathToSVG(path, 800, 480)), 0644); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", viz.LabelStyle.Render("svg:"), viz.ValueStyle.Render(svgOut))
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tZT\tZ0\tTHETA0\tC\tSTEPS\tDEGEN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.2f\t%.3f\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Zt,
			run.Z0,
			run.Theta0,
			float64(run.C),
			run.Steps,
			run.Degenerate,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotPath(path, plotWidth, plotHeight))
	fmt.Println(viz.DepthGraph(path, plotWidth, 10))
	return nil
}

func svgRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}

	svg := export.PathToSVG(path, svgWidth, svgHeight)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, path)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, path)
}
