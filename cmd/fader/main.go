package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/phanxgames/fader"
	"github.com/phanxgames/fader/ebitenrun"
)

var (
	configFile string
	scriptFile string
	dt         float64
	frames     int
	plotNode   string
	debug      bool
	showFPS    bool
	width      int
	height     int
)

// maxFrames bounds a run without --frames.
const maxFrames = 100000

func main() {
	rootCmd := &cobra.Command{
		Use:   "fader",
		Short: "show/hide transition runner",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "stage config (YAML)")
	rootCmd.PersistentFlags().StringVarP(&scriptFile, "script", "s", "", "step script (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log fader and animation traces")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a config headless and report final state",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "timestep in seconds")
	runCmd.Flags().IntVar(&frames, "frames", 0, "frames to run (0: until the script and all animations finish)")
	runCmd.Flags().StringVar(&plotNode, "plot", "", "plot the world alpha of this node")

	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "list easing curve names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fader.DefaultEasings().Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "preview a config in a window",
		RunE:  runWindow,
	}
	windowCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS overlay")
	windowCmd.Flags().IntVar(&width, "width", 640, "window width")
	windowCmd.Flags().IntVar(&height, "height", 480, "window height")

	rootCmd.AddCommand(runCmd, easingsCmd, windowCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadStage builds a stage from the --config and --script flags.
func loadStage() (*fader.Stage, error) {
	if configFile == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := fader.LoadConfigFile(configFile)
	if err != nil {
		return nil, err
	}
	stage := fader.NewStage()
	stage.SetDebugMode(debug)
	if _, err := cfg.Apply(stage); err != nil {
		return nil, fmt.Errorf("failed to apply config: %w", err)
	}
	if scriptFile != "" {
		script, err := fader.LoadScriptFile(scriptFile)
		if err != nil {
			return nil, err
		}
		stage.SetScript(script)
	}
	return stage, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	stage, err := loadStage()
	if err != nil {
		return err
	}
	defer stage.Close()

	var traced *fader.Node
	if plotNode != "" {
		if traced = stage.Root().Find(plotNode); traced == nil {
			return fmt.Errorf("%w: %q", fader.ErrUnknownTarget, plotNode)
		}
	}

	var trace []float64
	n := 0
	for ; frames == 0 || n < frames; n++ {
		if frames == 0 && (n >= maxFrames || settled(stage)) {
			break
		}
		stage.Update(dt)
		if traced != nil {
			trace = append(trace, traced.WorldAlpha())
		}
	}

	fmt.Printf("ran %d frames (%.3fs)\n\n", n, stage.Clock().Elapsed())
	printFaders(stage)

	if len(trace) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(trace,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s world alpha", plotNode)),
		))
	}
	return nil
}

// settled reports whether the script is done and nothing is animating.
func settled(stage *fader.Stage) bool {
	if s := stage.Script(); s != nil && !s.Done() {
		return false
	}
	for _, f := range stage.Manager().Faders() {
		if f.IsAnimating() {
			return false
		}
	}
	return true
}

func printFaders(stage *fader.Stage) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FADER\tTAGS\tVISIBLE\tALPHA\tSCALE\tANCHORS")
	for _, f := range stage.Manager().Faders() {
		n, ok := f.Target().(*fader.Node)
		if !ok {
			continue
		}
		anchors := "-"
		if n.Anchored {
			anchors = n.Anchors.Value().String()
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%.3f\t%s\t%s\n",
			f.Name(),
			strings.Join(f.Tags(), ","),
			f.IsVisible(),
			n.Alpha,
			n.Scale.Value(),
			anchors,
		)
	}
	w.Flush()
}

func runWindow(cmd *cobra.Command, args []string) error {
	stage, err := loadStage()
	if err != nil {
		return err
	}
	defer stage.Close()
	return ebitenrun.Run(stage, ebitenrun.RunConfig{
		Title:   "fader: " + configFile,
		Width:   width,
		Height:  height,
		ShowFPS: showFPS,
	})
}
