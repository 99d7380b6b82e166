package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/analysis"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/config"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/export"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/metrics"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/server"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/session"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/storage"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	shape      string
	count      int
	dt         float64
	duration   float64
	seed       int64
	scriptName string
	configFile string
	preset     string
	addr       string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "godhand",
		Short: "gesture driven particle ensemble simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// default to the live view
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".godhand", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "run a scripted session headless and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSession,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [script]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulation over websockets",
		RunE:  runServe,
	}
	addSimFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "outbound frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(args[0], os.Stdout)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the physics kernel",
		RunE:  benchKernel,
	}
	addSimFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list available presets for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for shape: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list available shapes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range shapes.Kinds() {
				fmt.Println(k)
			}
		},
	}

	scriptsCmd := &cobra.Command{
		Use:   "scripts",
		Short: "list available hand scripts",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range session.ListScripts() {
				fmt.Println(n)
			}
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral analysis of the spring-return oscillation",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait of rest distance vs mean speed",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file.svg]",
		Short: "render one frame of a shape to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotSVG,
	}
	addSimFlags(snapshotCmd)

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, listCmd, plotCmd,
		exportJSONCmd, exportCSVCmd, benchCmd, presetsCmd, shapesCmd, scriptsCmd,
		analyzeCmd, phaseCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shape, "shape", "sphere", "particle shape")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "particle count")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&scriptName, "script", "none", "hand script")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig applies, in order of increasing priority: defaults, preset,
// config file, then explicitly set CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(shape, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(shape))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("shape") || cfg.Shape == "" {
		cfg.Shape = shape
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = count
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func buildSession(cfg *config.Config, script session.Script) *session.Session {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ens := particles.NewEnsemble(cfg.Count, cfg.ShapeKind(), rng)
	sim := particles.NewSimulator(ens, cfg.Physics)
	classifier := gesture.NewClassifier(cfg.Classifier)
	return session.New(sim, classifier, script)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		scriptName = args[0]
	}

	script, err := session.GetScript(scriptName)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sess := buildSession(cfg, script)
	sess.AddMetric(metrics.NewRestDistance())
	sess.AddMetric(metrics.NewSpeed())
	sess.AddMetric(metrics.NewGestureSwitches())

	fmt.Printf("running %s with %d particles...\n", cfg.Shape, cfg.Count)
	start := time.Now()

	result, err := sess.Run(context.Background(), session.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Shape, scriptName, cfg.Count, cfg.Dt, cfg.Duration, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.Ticks)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		scriptName = args[0]
	}

	script, err := session.GetScript(scriptName)
	if err != nil {
		return err
	}

	sess := buildSession(cfg, script)
	model := viz.NewModel(sess, scriptName, cfg.Dt)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = addr
	}
	if cmd.Flags().Changed("fps") {
		cfg.Server.FrameRate = frameRate
	}

	latest := hand.NewLatest()
	sess := buildSession(cfg, session.Live(latest))

	srv := server.New(server.Config{Addr: cfg.Server.Addr, FrameRate: cfg.Server.FrameRate}, sess, latest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tSCRIPT\tTIME\tPARTICLES\tDURATION\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2fs\t%.4fs\n",
			run.ID,
			run.Shape,
			run.Script,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Duration,
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("shape: %s, script: %s\n", meta.Shape, meta.Script)
	fmt.Printf("samples: %d\n\n", len(series.Times))

	fmt.Println(asciigraph.Plot(series.RestDistance,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean rest distance"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(series.MeanSpeed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean speed"),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.RestDistance) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}

	spectrum := analysis.PowerSpectrum(series.RestDistance)
	freq := analysis.DominantFrequency(series.RestDistance, meta.Dt)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n", len(series.RestDistance))
	fmt.Printf("dominant frequency: %.3f Hz\n\n", freq)

	shown := spectrum
	if len(shown) > 128 {
		shown = shown[:128]
	}
	fmt.Println(asciigraph.Plot(shown,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("rest distance power spectrum"),
	))
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.RestDistance) == 0 {
		return fmt.Errorf("no data to plot")
	}

	portrait := analysis.NewPortrait("rest distance", "mean speed", series.RestDistance, series.MeanSpeed)
	fmt.Println(portrait.Render(80, 24))
	fmt.Printf("x: %s, y: %s, %d points\n", portrait.XLabel, portrait.YLabel, len(portrait.X))
	return nil
}

func snapshotSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ens := particles.NewEnsemble(cfg.Count, cfg.ShapeKind(), rng)

	canvas := viz.RenderPositions(ens.Positions(), nil, 80, 24)
	svg := export.CanvasToSVG(canvas, cfg.Color, 4)

	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %d particles)\n", args[0], cfg.Shape, cfg.Count)
	return nil
}

func benchKernel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ens := particles.NewEnsemble(cfg.Count, cfg.ShapeKind(), rng)
	sim := particles.NewSimulator(ens, cfg.Physics)

	left := &hand.Point{X: -5, Y: 1, Open: true}
	right := &hand.Point{X: 5, Y: 1, Open: true}
	snap := hand.NewSnapshot(left, right)

	const ticks = 1000
	fmt.Printf("stepping %d particles for %d ticks...\n", cfg.Count, ticks)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		sim.Step(snap, gesture.Idle, cfg.Dt)
	}
	elapsed := time.Since(start)

	perTick := elapsed / ticks
	fmt.Printf("total: %v\n", elapsed)
	fmt.Printf("per tick: %v (%.1f fps)\n", perTick, float64(time.Second)/float64(perTick))
	fmt.Printf("particle-steps/sec: %.0f\n", float64(cfg.Count)*ticks/elapsed.Seconds())
	return nil
}
