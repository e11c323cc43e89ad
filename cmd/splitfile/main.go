package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/d1mav0lk0v/split-file/internal/cliconfig"
	"github.com/d1mav0lk0v/split-file/internal/split"
	"github.com/d1mav0lk0v/split-file/internal/term"
)

const helpDescription = `
Split one file into several files.

Output files are created next to the source (or in target_dir) with a
sequence number suffix: {stem}_{n}{ext}, n starting at 1. No files are
created when there are no lines to fill them.

Warning: output files overwrite existing files with the same name!
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  splitfile -l 1000 access.log
  splitfile -f 4 -t -e ISO-8859-1 report.csv out/
  splitfile -l 500 --watch --verbose feed.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "splitfile [flags] source_file [target_dir]",
		Short:   "Split one text file into several files by line count or file count",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.RangeArgs(1, 2),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags; positional arguments count as
			// explicitly set so file/env defaults never override them.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfg.Source = args[0]
			if len(args) == 2 {
				cfg.TargetDir = args[1]
				changed["target-dir"] = true
			}

			// Load config file first (default ~/.splitfile/config.toml),
			// then environment, then flag overrides via the changed map.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// An explicit zero is invalid, not "unset".
			if changed["nlines"] && cfg.NLines <= 0 {
				return fmt.Errorf("not a positive integer: %d", cfg.NLines)
			}
			if changed["nfiles"] && cfg.NFiles <= 0 {
				return fmt.Errorf("not a positive integer: %d", cfg.NFiles)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Debug().Interface("config", cfg).Msg("configuration")

			reporter := term.NewReporter(cfg.Verbose)
			splitter, err := split.New(split.Config{
				Source:    cfg.Source,
				TargetDir: cfg.TargetDir,
				Encoding:  cfg.Encoding,
				Title:     cfg.Title,
				Directive: cfg.Directive(),
			},
				split.WithLogger(log),
				split.WithReporter(reporter),
			)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			reporter.Start()

			spinner := term.NewSpinner(os.Stdout, "read & write:", 0, reporter.Interactive())
			spinner.Start()
			_, runErr := splitter.Run(ctx)
			spinner.Stop()
			if runErr != nil {
				return runErr
			}

			reporter.Success()

			if cfg.Watch {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				go func() {
					<-sigCh
					log.Info().Msg("received signal, stopping...")
					cancel()
				}()

				if err := split.Watch(ctx, splitter, cfg.Debounce, log); err != nil {
					return err
				}
			}

			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.splitfile/config.toml)")
	root.Flags().IntVarP(&cfg.NLines, "nlines", "l", 0, "number of lines in output files")
	root.Flags().IntVarP(&cfg.NFiles, "nfiles", "f", 0, "number of output files")
	root.Flags().StringVarP(&cfg.Encoding, "encoding", "e", cfg.Encoding, "encoding of source file and output files (IANA name)")
	root.Flags().BoolVarP(&cfg.Title, "title", "t", cfg.Title, "repeat the first source line at the top of every output file")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "display created output files")
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "keep running and re-split when the source file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay between a source change and the re-split (watch mode)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("splitfile")
		os.Exit(1)
	}
}
