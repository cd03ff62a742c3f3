// Package config centralizes the solve's tunable settings: the dictionary
// and board file paths, the board layout and scoring variant, output
// format, and the optional worker count for concurrent solving. Defaults
// live in viper, overridable by environment variables and CLI flags bound
// through pflag, layered into a single flat struct since this solver has
// no game-session state to carry between invocations.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/variant"
)

const (
	KeyDictPath    = "dict"
	KeyBoardPath   = "board"
	KeyBoardLayout = "board-layout"
	KeyFormat      = "format"
	KeyWorkers     = "workers"
	KeyStats       = "stats"
	KeyLuaFilter   = "lua-filter"
	KeyRemote      = "remote"
	KeyDumpDot     = "dump-graphviz"
)

// Config is the resolved set of options for one solve invocation.
type Config struct {
	v *viper.Viper
}

// New builds a Config with defaults set, ready to have a flag set bound
// over it.
func New() *Config {
	v := viper.New()
	v.SetDefault(KeyDictPath, "words")
	v.SetDefault(KeyBoardPath, "board")
	v.SetDefault(KeyBoardLayout, board.StandardLayoutName)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyWorkers, 0)
	v.SetEnvPrefix("WWFSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// BindFlags registers the solve settings as flags on fs. Load binds them
// so flag values (when set) take priority over env vars and defaults.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyDictPath, "d", "words", "dictionary word list path")
	fs.String(KeyBoardPath, "board", "board file path")
	fs.String(KeyBoardLayout, board.StandardLayoutName, "premultiplier board layout name")
	fs.String(KeyFormat, "text", "output format: text, json, or yaml")
	fs.Int(KeyWorkers, 0, "concurrent solver worker count (0 = sequential Solve)")
	fs.Bool(KeyStats, false, "print a score distribution summary")
	fs.String(KeyLuaFilter, "", "optional Lua script path to filter plays")
	fs.String(KeyRemote, "", "AWS Lambda function name to invoke instead of solving locally")
	fs.StringP(KeyDumpDot, "W", "", "dump the built GADDAG as a GraphViz file and exit")
}

// Load merges fs's parsed flags on top of env vars and defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := New()
	if err := cfg.v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}
	return cfg, nil
}

func (c *Config) DictPath() string    { return c.v.GetString(KeyDictPath) }
func (c *Config) BoardPath() string   { return c.v.GetString(KeyBoardPath) }
func (c *Config) BoardLayout() string { return c.v.GetString(KeyBoardLayout) }
func (c *Config) Format() string      { return c.v.GetString(KeyFormat) }
func (c *Config) Workers() int        { return c.v.GetInt(KeyWorkers) }
func (c *Config) Stats() bool         { return c.v.GetBool(KeyStats) }
func (c *Config) LuaFilter() string   { return c.v.GetString(KeyLuaFilter) }
func (c *Config) Remote() string      { return c.v.GetString(KeyRemote) }
func (c *Config) DumpDot() string     { return c.v.GetString(KeyDumpDot) }

// Variant returns the scoring ruleset this solve runs under. Only one is
// supported today, but resolving it through a typed value rather than a
// bare string keeps callers from hard-coding the scoring rules directly.
func (c *Config) Variant() variant.Variant {
	return variant.WWF
}
