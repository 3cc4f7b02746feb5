// Package cmd holds the kong commands.
package cmd

import "github.com/yukinoda/KmCaster/internal/config"

type CLI struct {
	ConfigFile string     `name:"config" help:"Config file (JSON, YAML or TOML); searched in the usual places when unset" type:"path" env:"KMCASTER_CONFIG"`
	Log        config.Log `embed:"" prefix:"log."`

	Cast   Cast          `cmd:"" default:"withargs" help:"Show the keyboard and mouse overlay"`
	Keys   Keys          `cmd:"" help:"Print input events and their labels"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}
