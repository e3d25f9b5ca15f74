//go:build !ebiten

package main

import (
	"errors"
	"fmt"

	"fleas/internal/config"

	"github.com/spf13/cobra"
)

var errViewerUnavailable = errors.New("the viewer requires the ebiten build tag")

func newViewCmd(flagged *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch a single trial ring by ring (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/fleas view` or build with `-tags ebiten`.")
			return errViewerUnavailable
		},
	}
	flagged.BindViewer(cmd.Flags())
	return cmd
}
