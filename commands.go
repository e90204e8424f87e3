package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze-solver/cli"
	"github.com/beka-birhanu/vinom-maze-solver/config"
	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vinom-maze-solver",
		Short:         "Find the nearest exit of text mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := initSolving(cmd.Context())
			defer cleanup()

			menu, err := cli.NewMenu(cli.Config{
				Source:  mazeSource,
				Solver:  solver,
				Budgets: config.Envs.MoveBudgets,
				In:      os.Stdin,
				Out:     os.Stdout,
			})
			if err != nil {
				return err
			}

			err = menu.Run(cmd.Context())
			if errors.Is(err, cli.ErrAborted) {
				return nil
			}
			return err
		},
	}

	root.AddCommand(newServeCmd(), newGenerateCmd(), newTokenCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := initSolving(cmd.Context())
			defer cleanup()

			initMazeController()
			initRouter()
			return router.Run()
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate WIDTH HEIGHT",
		Short: "Print a random maze of WIDTH x HEIGHT rooms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			height, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			m, err := maze.Generate("generated", width, height, rng)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible maze")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Issue a token for the protected routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initJWTTokenizer()
			tok, err := jwtTokenizer.Generate(map[string]any{"sub": args[0]}, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
