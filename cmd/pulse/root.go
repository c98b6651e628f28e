// ABOUTME: Root Cobra command for pulse CLI.
// ABOUTME: Opens storage and the alias store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/config"
	"github.com/harperreed/pulse/internal/resolve"
	"github.com/harperreed/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	repo       storage.Repository
	aliasStore alias.Store
	resolver   *resolve.Resolver
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Health export file importer",
	Long: `Pulse imports CSV exports from fitness devices and services into one
unified local dataset.

WHAT IT UNDERSTANDS:

  Recovery      WHOOP physiological cycles (recovery score, HRV, RHR, skin temp)
  Sleep         sleep stages, efficiency, sleep score
  Workouts      strain, energy, heart rate, duration
  Daily         steps, calories, ambient temperature
  Journal       journal questions and answers
  Strength      StrongLifts-style exercise logs (weight, reps, sets, volume)

Files are classified by their header row, not their filename. Column names
are matched against a built-in alias table plus a learned tier that grows
every time an unfamiliar header resolves successfully, so vendor format
drift gets absorbed over time.

QUICK START:

  $ pulse import whoop_recovery.csv         # Parse and preview one file
  $ pulse import *.csv --commit             # Parse a batch, commit the lot
  $ pulse list                              # See recent committed records
  $ pulse list --category recovery          # Filter by category
  $ pulse aliases                           # Inspect learned header aliases

EXPORT:

  $ pulse export json -o backup.json        # Full backup
  $ pulse export yaml                       # Human-readable dump

MCP INTEGRATION:

  Run 'pulse mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records land in SQLite at ~/.local/share/pulse/pulse.db. Learned aliases
  live in Charm KV and sync across devices (set "alias_backend": "local"
  in ~/.config/pulse/config.json to keep them on this machine only).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		aliasStore, err = cfg.OpenAliasStore()
		if err != nil {
			_ = repo.Close()
			return fmt.Errorf("open alias store: %w", err)
		}

		resolver = resolve.New(aliasStore)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if aliasStore != nil {
			_ = aliasStore.Close()
		}
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
