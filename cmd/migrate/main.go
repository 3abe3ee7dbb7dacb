package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"booky/internal/config"
	"booky/internal/logging"
	"booky/internal/store"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Default().Error().Err(err).Msg("migrate failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the booky database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withStore(func(ctx context.Context, st *store.Store) error {
				if err := goose.UpContext(ctx, st.DB(), store.MigrationsDir(st.Driver())); err != nil {
					return err
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: withStore(func(ctx context.Context, st *store.Store) error {
				if err := goose.DownContext(ctx, st.DB(), store.MigrationsDir(st.Driver())); err != nil {
					return err
				}
				fmt.Println("Migrations rolled back successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the state of every migration",
			Args:  cobra.NoArgs,
			RunE: withStore(func(ctx context.Context, st *store.Store) error {
				return goose.StatusContext(ctx, st.DB(), store.MigrationsDir(st.Driver()))
			}),
		},
		newCreateCmd(),
	)

	return rootCmd
}

func newCreateCmd() *cobra.Command {
	var driver string
	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a new SQL migration file",
		Example: "  migrate create add_books_title_index --driver sqlite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := migrationsDir(driver)
			// Existing migrations are numbered 00001, 00002, ...
			goose.SetBaseFS(nil)
			goose.SetSequential(true)
			if err := goose.Create(nil, dir, args[0], "sql"); err != nil {
				return err
			}
			fmt.Printf("Migration created in %s: %s\n", dir, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", config.DriverPostgres, "store driver the migration targets: postgres or sqlite")
	return cmd
}

// withStore opens the configured store and prepares goose for it.
func withStore(fn func(ctx context.Context, st *store.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.SetDefault(logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format))

		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := store.UseEmbeddedMigrations(st.Driver()); err != nil {
			return err
		}
		goose.SetLogger(gooseLogger{})
		return fn(ctx, st)
	}
}
