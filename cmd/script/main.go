package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"wealthdesk/cmd"
	"wealthdesk/internal/app"
	"wealthdesk/internal/db"
	"wealthdesk/internal/ingest"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wealthdesk",
		Short:        "Maintenance tasks for the wealthdesk opportunity engine",
		SilenceUsage: true,
	}
	root.AddCommand(
		newMigrateCmd(),
		newImportCmd(),
		newDashboardCmd(),
		newExportClientIDsCmd(),
	)
	return root
}

// withDependencies wires everything up for a single command run.
func withDependencies(c *cobra.Command, fn func(ctx context.Context, deps *cmd.Dependencies) error) error {
	ctx := logger.WithContext(c.Context(), logger.New())
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)
	return fn(ctx, deps)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes",
		RunE: func(c *cobra.Command, _ []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				if err := db.Migrate(ctx, deps.Db); err != nil {
					return err
				}
				logger.FromContext(ctx).Infow("schema is up to date")
				return nil
			})
		},
	}
}

type importFunc func(importer ingest.Importer, ctx context.Context, tx repository.Queryer, path string) (*ingest.ImportResult, error)

var importKinds = map[string]importFunc{
	"sips":      ingest.Importer.ImportSipRecords,
	"insurance": ingest.Importer.ImportInsuranceRecords,
	"holdings":  ingest.Importer.ImportHoldings,
	"users":     ingest.Importer.ImportUsers,
}

func newImportCmd() *cobra.Command {
	var (
		file      string
		batchSize int
	)
	command := &cobra.Command{
		Use:       "import (sips|insurance|holdings|users)",
		Short:     "Load a CSV or JSON export into the database",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"sips", "insurance", "holdings", "users"},
		RunE: func(c *cobra.Command, args []string) error {
			run := importKinds[args[0]]
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				if err := db.Migrate(ctx, deps.Db); err != nil {
					return err
				}

				tx, err := deps.Db.BeginTx(ctx, nil)
				if err != nil {
					return fmt.Errorf("failed to begin import: %w", err)
				}
				defer tx.Rollback()

				importer := deps.Importer
				importer.BatchSize = batchSize
				start := time.Now()
				result, err := run(importer, ctx, tx, file)
				if err != nil {
					return err
				}
				if err := tx.Commit(); err != nil {
					return fmt.Errorf("failed to commit import: %w", err)
				}

				logger.FromContext(ctx).Infow(
					"import complete",
					"kind", args[0],
					"file", file,
					"read", result.Read,
					"skipped", result.Skipped,
					"batches", result.Batches,
					"elapsed", time.Since(start).String(),
				)
				return nil
			})
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "path to a .csv or .json export")
	command.Flags().IntVar(&batchSize, "batch-size", ingest.DefaultBatchSize, "rows per insert statement")
	_ = command.MarkFlagRequired("file")
	return command
}

func newDashboardCmd() *cobra.Command {
	var agentExternalID, agentID string
	command := &cobra.Command{
		Use:   "dashboard",
		Short: "Build an advisor dashboard and print it as JSON",
		RunE: func(c *cobra.Command, _ []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				dashboard, err := deps.DashboardHandler.GetDashboard(ctx, app.GetDashboardInput{
					AgentExternalID: optional(agentExternalID),
					AgentID:         optional(agentID),
					Refresh:         true,
				})
				if err != nil {
					return err
				}
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dashboard)
			})
		},
	}
	command.Flags().StringVar(&agentExternalID, "agent-external-id", "", "advisor external id")
	command.Flags().StringVar(&agentID, "agent-id", "", "advisor internal id")
	return command
}

func newExportClientIDsCmd() *cobra.Command {
	var agentID, output string
	command := &cobra.Command{
		Use:   "export-client-ids",
		Short: "Write every client id with a SIP or policy, one per line",
		RunE: func(c *cobra.Command, _ []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				ids, err := deps.Importer.ClientIDs(ctx, nil, optional(agentID))
				if err != nil {
					return err
				}
				if output == "" {
					output = fmt.Sprintf("client_ids_%s.txt", time.Now().Format("20060102_150405"))
				}
				contents := strings.Join(ids, "\n")
				if len(ids) > 0 {
					contents += "\n"
				}
				if err := os.WriteFile(output, []byte(contents), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				logger.FromContext(ctx).Infow("exported client ids", "count", len(ids), "file", output)
				return nil
			})
		},
	}
	command.Flags().StringVar(&agentID, "agent-id", "", "only clients of this advisor")
	command.Flags().StringVarP(&output, "output", "o", "", "output file")
	return command
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
