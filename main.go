//go:build !lambda

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps CLI flags to config keys.
var flagKeys = map[string]string{
	"target":           "target",
	"exclude-champion": "exclude_champions",
	"exclude-trait":    "exclude_traits",
	"bound":            "search.bound",
	"per-slot-gain":    "search.per_slot_gain",
	"trace":            "search.trace",
	"max-team-size":    "search.max_team_size",
	"timeout":          "search.timeout",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

type app struct {
	cfgFile string
	cfg     Config
	out     io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "team-optimizer",
		Short: "Find the smallest team that activates a target number of traits",
		Long: `team-optimizer searches a champion catalog for the smallest team whose
trait counts activate at least the target number of traits. Among teams of
that size it prefers no 5-cost, then no 4-cost, then lower average and total
cost, then alphabetical order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadAppConfig(cmd.Flags())
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./team-optimizer.yaml)")
	pf.Int("target", 0, "number of traits that must be active")
	pf.StringSlice("exclude-champion", nil, "champion to leave out (repeatable)")
	pf.StringSlice("exclude-trait", nil, "trait to ignore (repeatable)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")

	root.AddCommand(a.newSolveCmd(), a.newPoolCmd(), a.newTraitsCmd())
	return root
}

// loadAppConfig layers defaults, config file, TEAM_OPTIMIZER_* env vars and
// explicitly set flags, then configures logging.
func (a *app) loadAppConfig(flags *pflag.FlagSet) error {
	v := newViper(a.cfgFile)
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	// inverted flag, so it cannot be bound directly
	if f := flags.Lookup("no-structural"); f != nil && f.Changed {
		v.Set("search.structural_prune", false)
	}

	cfg, err := loadConfig(v, a.cfgFile != "")
	if err != nil {
		return err
	}
	a.cfg = cfg
	if err := initLogging(cfg.Log.Level, cfg.Log.Format, nil); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("loaded config", slog.String("file", used))
	}
	return nil
}

// loadPool reads the catalog named in args, or the embedded one, and applies
// the configured exclusions.
func (a *app) loadPool(args []string) ([]Champion, error) {
	var (
		cat *Catalog
		err error
	)
	if len(args) > 0 {
		cat, err = LoadCatalog(args[0])
	} else {
		cat, err = parseCatalog(embeddedCatalog)
	}
	if err != nil {
		return nil, err
	}
	pool := BuildPool(cat, &a.cfg)

	log := newLogger("catalog")
	log.Info("loaded champions",
		slog.Int("records", len(cat.Champions)+cat.Skipped),
		slog.Int("usable", len(cat.Champions)),
		slog.Int("pool", len(pool)))
	log.Debug("exclusions",
		slog.Any("champions", sortedKeys(trimmedSet(a.cfg.ExcludeChampions))),
		slog.Any("traits", sortedKeys(trimmedSet(a.cfg.ExcludeTraits))))
	log.Debug("pool preview", slog.String("pool", poolPreview(pool, 10)))
	return pool, nil
}

func (a *app) newSolveCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "solve [champs.json]",
		Short: "Search for the best minimal team",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.loadPool(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := NewSolver(pool, &a.cfg, Observer{}).Solve(ctx)
			if err != nil {
				return err
			}
			return FormatResult(a.out, res, output)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", FormatText, "output format: text, json or yaml")
	f.String("bound", "", "feasibility bound: tight, fixed or none")
	f.Int("per-slot-gain", 0, "traits assumed per remaining slot with --bound=fixed")
	f.Bool("no-structural", false, "disable the remaining-champions prune")
	f.Bool("trace", false, "log every branch at debug level")
	f.Int("max-team-size", 0, "largest team size to try (0 = pool size)")
	f.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
	return cmd
}

func (a *app) newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool [champs.json]",
		Short: "Print the filtered candidate pool in search order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pool, err := a.loadPool(args)
			if err != nil {
				return err
			}
			return FormatPool(a.out, pool, NewEvaluator(&a.cfg))
		},
	}
}

func (a *app) newTraitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traits [champs.json]",
		Short: "Print trait rules and how many pool champions carry each trait",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pool, err := a.loadPool(args)
			if err != nil {
				return err
			}
			return FormatTraits(a.out, SummarizeTraits(&a.cfg, pool))
		},
	}
}

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
