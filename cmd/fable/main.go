// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"fable/internal/ast"
	"fable/internal/cache"
	"fable/internal/config"
	"fable/internal/errors"
	"fable/internal/py"
	"fable/internal/transform"
)

var version = "0.1.0"

var log = commonlog.GetLogger("fable")

func main() {
	var verbosity int
	var configPath string
	var noCache bool

	root := &cobra.Command{
		Use:           "fable",
		Short:         "Translate serialized source IR modules into Python-shaped output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "project configuration file")

	translateCmd := &cobra.Command{
		Use:   "translate <file.json> [...]",
		Short: "Translate one or more serialized IR files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			start := time.Now()
			for _, path := range args {
				if err := translateFile(cfg, path, noCache); err != nil {
					color.Red("Translation failed after %s", formatDuration(time.Since(start)))
					return err
				}
			}
			if !cfg.Quiet {
				color.Green("Successfully processed %d file(s) in %s", len(args), formatDuration(time.Since(start)))
			}
			return nil
		},
	}
	translateCmd.Flags().BoolVar(&noCache, "no-cache", false, "translate even when a cached output is still valid")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	root.AddCommand(translateCmd, versionCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func translateFile(cfg config.Config, path string, noCache bool) error {
	fileCache := cache.New(cfg.CacheDir)
	if !noCache {
		if output, ok := fileCache.Lookup(path, time.Time{}); ok {
			log.Infof("cache hit for %s", path)
			return emit(cfg, path, output)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	decls, err := ast.DecodeModule(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	reporter := errors.NewReporter(path, os.Stderr)
	translator := transform.NewTransformer(reporter)
	module, err := translator.TranslateProgram(decls)
	if err != nil {
		if ce, ok := err.(*errors.CompilerError); ok {
			fmt.Fprint(os.Stderr, reporter.FormatError(*ce))
		}
		return fmt.Errorf("translate %s: %w", path, err)
	}

	output := py.Print(module)
	if err := fileCache.Store(path, output); err != nil {
		log.Warningf("cache store for %s failed: %s", path, err.Error())
	}
	return emit(cfg, path, output)
}

func emit(cfg config.Config, path, output string) error {
	if cfg.OutDir == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return os.WriteFile(filepath.Join(cfg.OutDir, base+".py"), []byte(output), 0o644)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
