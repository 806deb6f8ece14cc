package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// BoundMode selects how the feasibility bound estimates reachable traits.
type BoundMode string

const (
	// BoundTight uses the largest trait yield of any remaining champion.
	BoundTight BoundMode = "tight"
	// BoundFixed assumes every remaining slot adds PerSlotGain traits.
	BoundFixed BoundMode = "fixed"
	// BoundNone disables bound pruning.
	BoundNone BoundMode = "none"
)

// TraitThreshold is one registry entry. Stored as a list rather than a map so
// trait labels keep their case through viper.
type TraitThreshold struct {
	Name string `mapstructure:"name" yaml:"name"`
	Min  int    `mapstructure:"min" yaml:"min"`
}

// SearchOptions tunes the search engine. None of them change which team wins
// as long as the bound is sound.
type SearchOptions struct {
	// Bound is the feasibility bound mode.
	Bound BoundMode `mapstructure:"bound"`
	// PerSlotGain is the assumed trait gain per slot in BoundFixed mode.
	PerSlotGain int `mapstructure:"per_slot_gain"`
	// StructuralPrune stops branching when the pool suffix cannot fill the team.
	StructuralPrune bool `mapstructure:"structural_prune"`
	// Trace logs every push at debug level. Very noisy.
	Trace bool `mapstructure:"trace"`
	// MaxTeamSize caps iterative deepening. 0 means the pool size.
	MaxTeamSize int `mapstructure:"max_team_size"`
	// Timeout aborts the search. 0 means no limit.
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full, immutable input of one optimization run.
type Config struct {
	Target           int              `mapstructure:"target"`
	ExcludeChampions []string         `mapstructure:"exclude_champions"`
	ExcludeTraits    []string         `mapstructure:"exclude_traits"`
	Traits           []TraitThreshold `mapstructure:"traits"`
	ExactRule        ExactRule        `mapstructure:"exact_rule"`
	Search           SearchOptions    `mapstructure:"search"`
	Log              LogConfig        `mapstructure:"log"`
}

// DefaultConfig returns the stock TFT setup: target 7 with the usual
// headliner and unique traits excluded.
func DefaultConfig() Config {
	return Config{
		Target:           7,
		ExcludeChampions: []string{"Ekko", "Lulu", "Kog'Maw", "Smolder", "Rammus", "Lee Sin"},
		ExcludeTraits:    []string{"Monster Trainer", "Rogue Captain", "The Champ", "Rosemother", "Stance Master"},
		Traits: []TraitThreshold{
			{"Battle Academia", 3}, {"Crystal Gambit", 3}, {"Luchador", 2}, {"Mentor", 1},
			{"Mighty Mech", 3}, {"Monster Trainer", 1}, {"Prodigy", 2}, {"Protector", 2},
			{"Rogue Captain", 1}, {"Rosemother", 1}, {"Sniper", 2}, {"Sorcerer", 2},
			{"Soul Fighter", 2}, {"Stance Master", 1}, {"Star Guardian", 2}, {"Strategist", 2},
			{"Supreme Cells", 2}, {"The Champ", 1}, {"The Crew", 2}, {"Wraith", 2},
			{"Bastion", 2}, {"Duelist", 2}, {"Edgelord", 2}, {"Executioner", 2},
			{"Heavyweight", 2}, {"Juggernaut", 2},
		},
		ExactRule: ExactRule{Trait: "Mentor", Counts: []int{1, 4}},
		Search: SearchOptions{
			Bound:           BoundTight,
			PerSlotGain:     2,
			StructuralPrune: true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Registry builds the trait → threshold lookup. Later entries override earlier ones.
func (c *Config) Registry() TraitRegistry {
	reg := make(TraitRegistry, len(c.Traits))
	for _, t := range c.Traits {
		reg[strings.TrimSpace(t.Name)] = t.Min
	}
	return reg
}

// Validate rejects configurations the search cannot interpret.
func (c *Config) Validate() error {
	if c.Target < 1 {
		return fmt.Errorf("target must be at least 1, got %d", c.Target)
	}
	for _, t := range c.Traits {
		if strings.TrimSpace(t.Name) == "" {
			return errors.New("trait with empty name")
		}
		if t.Min < 1 {
			return fmt.Errorf("trait %q: threshold must be positive, got %d", t.Name, t.Min)
		}
	}
	if c.ExactRule.Trait != "" && len(c.ExactRule.Counts) == 0 {
		return fmt.Errorf("exact rule for %q has no counts", c.ExactRule.Trait)
	}
	for _, n := range c.ExactRule.Counts {
		if n < 1 {
			return fmt.Errorf("exact rule for %q: counts must be positive, got %d", c.ExactRule.Trait, n)
		}
	}
	switch c.Search.Bound {
	case BoundTight, BoundNone:
	case BoundFixed:
		if c.Search.PerSlotGain < 1 {
			return fmt.Errorf("per_slot_gain must be positive in fixed bound mode, got %d", c.Search.PerSlotGain)
		}
	default:
		return fmt.Errorf("unknown bound mode %q", c.Search.Bound)
	}
	if c.Search.MaxTeamSize < 0 {
		return fmt.Errorf("max_team_size must not be negative, got %d", c.Search.MaxTeamSize)
	}
	return nil
}

func trimmedSet(names []string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s[n] = true
		}
	}
	return s
}

func sortedKeys(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// setDefaults registers every config key on v so env overrides resolve.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("target", d.Target)
	v.SetDefault("exclude_champions", d.ExcludeChampions)
	v.SetDefault("exclude_traits", d.ExcludeTraits)
	v.SetDefault("traits", d.Traits)
	v.SetDefault("exact_rule.trait", d.ExactRule.Trait)
	v.SetDefault("exact_rule.counts", d.ExactRule.Counts)
	v.SetDefault("search.bound", string(d.Search.Bound))
	v.SetDefault("search.per_slot_gain", d.Search.PerSlotGain)
	v.SetDefault("search.structural_prune", d.Search.StructuralPrune)
	v.SetDefault("search.trace", d.Search.Trace)
	v.SetDefault("search.max_team_size", d.Search.MaxTeamSize)
	v.SetDefault("search.timeout", d.Search.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// newViper returns a viper instance with defaults, env binding and, when
// cfgFile is set, that file as the config source. Without cfgFile it looks
// for team-optimizer.yaml in the working directory and the user config dir.
func newViper(cfgFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("team-optimizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/team-optimizer")
	}

	// TEAM_OPTIMIZER_SEARCH_BOUND for search.bound
	v.SetEnvPrefix("TEAM_OPTIMIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config source behind v. A missing default config file
// is not an error; a missing explicit one is.
func loadConfig(v *viper.Viper, explicit bool) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
