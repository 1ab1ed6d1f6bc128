// academiactl operates directly on the local store for fully offline
// use: exporting and importing snapshots and seeding the starter
// catalog without a running server.
package main

import (
	"academia/workout-app/internal/config"
	"academia/workout-app/internal/repository/sqlite"
	"academia/workout-app/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "academiactl",
		Short: "Manage the local workout store",
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/"+config.AppName+".db", "path to the database file")

	rootCmd.AddCommand(newExportCmd(), newImportCmd(), newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore opens the database and ensures the schema exists.
func openStore() (*sqlite.DB, error) {
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newExportCmd() *cobra.Command {
	var scope string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections to a snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			transfer := service.NewTransferService(
				sqlite.NewExerciseRepository(db),
				sqlite.NewWorkoutRepository(db),
				sqlite.NewLogRepository(db),
			)

			snapshot, err := transfer.Export(context.Background(), service.Scope(scope))
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return err
			}

			if out == "" {
				out = service.ExportFilename(config.AppName, time.Now())
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return err
			}
			fmt.Println("Wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "all", "all, catalog, workouts or logs")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: standard export filename)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Import a snapshot file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			transfer := service.NewTransferService(
				sqlite.NewExerciseRepository(db),
				sqlite.NewWorkoutRepository(db),
				sqlite.NewLogRepository(db),
			)

			result := transfer.Import(context.Background(), raw)
			if result.Success {
				fmt.Println("Import completed with no errors")
				return nil
			}
			fmt.Printf("Import completed with %d error(s):\n", len(result.Errors))
			for _, msg := range result.Errors {
				fmt.Println(" -", msg)
			}
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the starter catalog into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := sqlite.NewExerciseRepository(db)
			if err := service.SeedCatalog(context.Background(), repo); err != nil {
				return err
			}
			count, err := repo.Count(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Catalog has %d exercise(s)\n", count)
			return nil
		},
	}
}
