package main

import (
	"os"
	"strings"

	"github.com/yukinoda/KmCaster/internal/cmd"
	"github.com/yukinoda/KmCaster/internal/config"
	"github.com/yukinoda/KmCaster/internal/configpaths"
	"github.com/yukinoda/KmCaster/internal/log"

	_ "github.com/yukinoda/KmCaster/internal/registry" // Register all input hooks

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("kmcaster"),
		kong.Description("Keyboard and mouse screencast overlay"),
		kong.UsageOnError(),
		config.Vars(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var tracer log.Tracer
	switch {
	case cli.Log.TraceFile != "":
		f, err := os.OpenFile(cli.Log.TraceFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open trace file", "file", cli.Log.TraceFile, "error", err)
			tracer = log.NewTracer(nil)
		} else {
			tracer = log.NewTracer(f)
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace" || cli.Cast.Debug:
		tracer = log.NewTracer(os.Stdout)
	default:
		tracer = log.NewTracer(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(tracer, (*log.Tracer)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("KMCASTER_CONFIG"); v != "" {
		return v
	}
	return ""
}
