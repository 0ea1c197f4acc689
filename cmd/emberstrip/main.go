package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emberstrip/internal/config"
	"github.com/san-kum/emberstrip/internal/encoder"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/loop"
	"github.com/san-kum/emberstrip/internal/menu"
	"github.com/san-kum/emberstrip/internal/metrics"
	"github.com/san-kum/emberstrip/internal/params"
	"github.com/san-kum/emberstrip/internal/storage"
	"github.com/san-kum/emberstrip/internal/strip"
	"github.com/san-kum/emberstrip/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	leds       int
	fps        int
	reversed   bool
	seed       int64
	ticks      int
	brightness int
	sparking   int
	cooling    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emberstrip",
		Short: "procedural fire controller for addressable LED strips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".emberstrip", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&leds, "leds", config.DefaultLeds, "strip length in cells")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	rootCmd.PersistentFlags().BoolVar(&reversed, "reversed", false, "mirror the strip end to end")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&brightness, "brightness", config.DefaultBrightness, "initial brightness")
	rootCmd.PersistentFlags().IntVar(&sparking, "sparking", config.DefaultSparking, "initial spark probability")
	rootCmd.PersistentFlags().IntVar(&cooling, "cooling", config.DefaultCooling, "initial cooling rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless and record metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of frames to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded run metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s brightness=%d sparking=%d cooling=%d\n",
					name, p.Brightness, p.Sparking, p.Cooling)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and CLI flags, flags
// winning over the file and the file over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("leds") {
		cfg.Leds = leds
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("reversed") {
		cfg.Reversed = reversed
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("brightness") {
		cfg.Brightness = brightness
	}
	if flags.Changed("sparking") {
		cfg.Sparking = sparking
	}
	if flags.Changed("cooling") {
		cfg.Cooling = cooling
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))

	store := params.NewStore(cfg.Leds)
	store.Set(params.Brightness, cfg.Brightness)
	store.Set(params.Sparking, cfg.Sparking)
	store.Set(params.Cooling, cfg.Cooling)

	sim := fire.NewSimulator(cfg.Leds, cfg.Reversed, rng)
	machine := menu.New(store, sim, nil)
	events := &encoder.Accumulator{}
	sched := loop.New(machine, events, strip.Discard{}, cfg.FPS, nil)

	recorder := metrics.NewRecorder(
		metrics.NewMeanLuma(),
		metrics.NewLitFraction(),
		metrics.NewPeakLuma(),
	)
	sched.AddObserver(recorder)

	fmt.Printf("running fire simulation (%d leds, %d ticks, seed %d)...\n", cfg.Leds, ticks, runSeed)
	start := time.Now()
	now := start
	for i := 0; i < ticks; i++ {
		if err := sched.RunTick(now); err != nil {
			return err
		}
		now = now.Add(sched.Period())
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	columns := make([]string, 0, len(recorder.Metrics()))
	for _, m := range recorder.Metrics() {
		columns = append(columns, m.Name())
	}
	runID, err := st.Save(storage.RunMetadata{
		Seed:     runSeed,
		Leds:     cfg.Leds,
		FPS:      cfg.FPS,
		Ticks:    ticks,
		Sparking: int(store.Get(params.Sparking)),
		Cooling:  int(store.Get(params.Cooling)),
		Columns:  columns,
		Metrics:  recorder.Summary(),
	}, recorder.Series())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range recorder.Summary() {
		fmt.Printf("  %s: %.6f\n", name, val)
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
	fmt.Fprintln(w, "ID\tTIME\tLEDS\tTICKS\tSEED\tSPARKING\tCOOLING")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Leds,
			run.Ticks,
			run.Seed,
			run.Sparking,
			run.Cooling,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("leds: %d, ticks: %d, seed: %d\n\n", meta.Leds, meta.Ticks, meta.Seed)

	for col, name := range meta.Columns {
		data := make([]float64, len(series))
		for i := range series {
			if col < len(series[i]) {
				data[i] = series[i][col]
			}
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, series)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, meta, series)
}
