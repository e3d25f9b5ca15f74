//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"strconv"

	"fleas/internal/app"
	"fleas/internal/config"
	"fleas/pkg/core"
	_ "fleas/pkg/sims/fleas"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var errViewerUnavailable = errors.New("viewer unavailable")

func newViewCmd(flagged *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch a single trial ring by ring",
		Long: `view opens a window showing one trial. Keys: space pauses, N plays one
ring, R restarts with the same seed, S reseeds, Q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flagged)
			if err != nil {
				return err
			}
			factory, ok := core.Sims()["fleas"]
			if !ok {
				return fmt.Errorf("%w: fleas sim not registered", errViewerUnavailable)
			}
			sim := factory(map[string]string{
				"size":  strconv.Itoa(cfg.Size),
				"steps": strconv.Itoa(cfg.Steps),
				"seed":  strconv.FormatInt(cfg.Seed, 10),
			})
			if sim == nil {
				return fmt.Errorf("%w: could not build sim", errViewerUnavailable)
			}

			game := app.New(sim, cfg.Viewer.Scale, cfg.Seed, cfg.Steps, cfg.Viewer.Rate)
			size := sim.Size()

			ebiten.SetWindowTitle("fleas — " + sim.Name())
			ebiten.SetWindowSize(size.W*cfg.Viewer.Scale, size.H*cfg.Viewer.Scale+app.HUDHeight)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	flagged.BindViewer(cmd.Flags())
	return cmd
}
