package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete table configuration
type Config struct {
	Table   TableSettings  `hcl:"table,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	MinBet        int    `hcl:"min_bet,optional"`
	BetMultiple   int    `hcl:"bet_multiple,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	DealDelayMS   int    `hcl:"deal_delay_ms,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// PlayerConfig defines one seat at the table
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"`
}

// Default returns the default table configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			MinBet:        10,
			BetMultiple:   2,
			StartingChips: 100,
			DealDelayMS:   800,
			LogLevel:      "warn",
		},
		Players: []PlayerConfig{
			{Name: "Player", Chips: 100},
		},
	}
}

// Load reads table configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := Default()
	if config.Table.MinBet == 0 {
		config.Table.MinBet = def.Table.MinBet
	}
	if config.Table.BetMultiple == 0 {
		config.Table.BetMultiple = def.Table.BetMultiple
	}
	if config.Table.StartingChips == 0 {
		config.Table.StartingChips = def.Table.StartingChips
	}
	if config.Table.DealDelayMS == 0 {
		config.Table.DealDelayMS = def.Table.DealDelayMS
	}
	if config.Table.LogLevel == "" {
		config.Table.LogLevel = def.Table.LogLevel
	}
	if len(config.Players) == 0 {
		config.Players = def.Players
	}
	for i := range config.Players {
		if config.Players[i].Chips == 0 {
			config.Players[i].Chips = config.Table.StartingChips
		}
	}

	return &config, nil
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Table.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive, got %d", c.Table.MinBet)
	}
	if c.Table.BetMultiple <= 0 {
		return fmt.Errorf("bet_multiple must be positive, got %d", c.Table.BetMultiple)
	}
	if c.Table.MinBet%c.Table.BetMultiple != 0 {
		return fmt.Errorf("min_bet %d must be a multiple of bet_multiple %d",
			c.Table.MinBet, c.Table.BetMultiple)
	}
	if c.Table.StartingChips < c.Table.MinBet {
		return fmt.Errorf("starting_chips %d cannot cover the minimum bet %d",
			c.Table.StartingChips, c.Table.MinBet)
	}
	if c.Table.DealDelayMS < 0 {
		return fmt.Errorf("deal_delay_ms must not be negative, got %d", c.Table.DealDelayMS)
	}

	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if p.Name == "Dealer" {
			return fmt.Errorf("player name %q is reserved", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Chips <= 0 {
			return fmt.Errorf("player %s: chips must be positive", p.Name)
		}
	}

	return nil
}
