// Command gluidemo opens interactive demos of the glui widgets.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/soypat/glui"
	"github.com/soypat/glui/gluiaux"
	"github.com/spf13/cobra"
)

func init() {
	// GLFW and OpenGL calls must happen on the main thread.
	runtime.LockOSThread()
}

var (
	layoutFile string
	width      int
	height     int
	silent     bool
	dumpFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gluidemo",
		Short: "interactive 3D widget demos",
		RunE:  runLight,
	}
	rootCmd.PersistentFlags().StringVar(&layoutFile, "layout", "", "YAML widget layout file")
	rootCmd.PersistentFlags().IntVar(&width, "width", 800, "window width")
	rootCmd.PersistentFlags().IntVar(&height, "height", 600, "window height")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "suppress logging")

	lightCmd := &cobra.Command{
		Use:   "light",
		Short: "move a light around a shaded tetrahedron",
		Args:  cobra.NoArgs,
		RunE:  runLight,
	}
	aimerCmd := &cobra.Command{
		Use:   "aimer",
		Short: "aim a spot light with a vector aimer",
		Args:  cobra.NoArgs,
		RunE:  runAimer,
	}
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "run or dump a widget layout",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVar(&dumpFile, "dump", "", "write the layout to this file and exit")

	rootCmd.AddCommand(lightCmd, aimerCmd, layoutCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadLayout() (*gluiaux.Layout, error) {
	if layoutFile == "" {
		return gluiaux.DefaultLayout(), nil
	}
	return gluiaux.LoadLayout(layoutFile)
}

func uiConfig(cmd *cobra.Command, title string) gluiaux.UIConfig {
	return gluiaux.UIConfig{
		Width:   width,
		Height:  height,
		Title:   title,
		Context: cmd.Context(),
		Silent:  silent,
		Logger:  log.New(cmd.ErrOrStderr(), "", log.LstdFlags),
	}
}

func viewport() glui.Viewport {
	return glui.Viewport{Width: width, Height: height, FlipY: true}
}

// logChanges logs every widget change of sc by name.
func logChanges(sc *gluiaux.Scene, logger *log.Logger) {
	ui := sc.Context
	ui.OnChange = func(p glui.Pick) {
		if silent {
			return
		}
		name := sc.Name(p)
		switch p.Kind {
		case glui.PickMover:
			logger.Printf("%s moved to %v", name, sc.Points[p.ID])
		case glui.PickAimer:
			a := ui.Aimer(p.ID)
			logger.Printf("%s aimed %v from %v", name, a.Dir(), a.Base())
		case glui.PickSlider:
			logger.Printf("%s = %.3f", name, ui.Slider(p.ID).Value())
		case glui.PickButton:
			logger.Printf("%s checked=%v", name, ui.Button(p.ID).Checked())
		case glui.PickTextField:
			logger.Printf("%s text %q", name, ui.TextField(p.ID).Text())
		default:
			logger.Printf("%s changed", p)
		}
	}
}

func runLayout(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	if dumpFile != "" {
		if err := gluiaux.SaveLayout(dumpFile, l); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", dumpFile)
		return nil
	}
	sc, err := l.Build(viewport())
	if err != nil {
		return err
	}
	cfg := uiConfig(cmd, "glui layout")
	logChanges(sc, cfg.Logger)
	cfg.Scene = drawAxes
	return gluiaux.Run(sc.Context, cfg)
}
