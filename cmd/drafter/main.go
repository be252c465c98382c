package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/repository"
	"github.com/viant/drafter/inspector/runner"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	concurrency int
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "drafter",
		Short:        "Extract class, protocol and method model from Objective-C and Swift sources",
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file path")
	rootCmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 0, "Max concurrent parsers (0 = config value)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	parseCmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse classes joining declarations with implementations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, args, func(ctx context.Context, srv *runner.Runner, files []string) *graph.Model {
				return &graph.Model{Classes: srv.Parse(ctx, files)}
			})
		},
	}

	methodsCmd := &cobra.Command{
		Use:   "methods [paths...]",
		Short: "Parse method call sites per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, args, func(ctx context.Context, srv *runner.Runner, files []string) *graph.Model {
				return &graph.Model{Methods: srv.ParseMethods(ctx, files)}
			})
		},
	}

	inheritCmd := &cobra.Command{
		Use:   "inherit [paths...]",
		Short: "Parse type hierarchy and protocols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, args, func(ctx context.Context, srv *runner.Runner, files []string) *graph.Model {
				classes, protocols := srv.ParseInherit(ctx, files)
				return &graph.Model{Classes: classes, Protocols: protocols}
			})
		},
	}

	rootCmd.AddCommand(parseCmd, methodsCmd, inheritCmd)
	return rootCmd
}

type handler func(ctx context.Context, srv *runner.Runner, files []string) *graph.Model

func execute(cmd *cobra.Command, opts *options, args []string, fn handler) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	config := runner.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := runner.LoadConfig(ctx, opts.configPath)
		if err != nil {
			return err
		}
		config = loaded
	}
	if opts.concurrency > 0 {
		config.MaxConcurrent = opts.concurrency
	}

	files, err := expand(ctx, logger, args)
	if err != nil {
		return err
	}
	srv := runner.New(runner.WithConfig(config), runner.WithLogger(logger))
	model := fn(ctx, srv, files)

	emitter := &graph.YAMLEmitter{}
	data, err := emitter.Emit(model)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// expand replaces directory arguments with source files they contain
func expand(ctx context.Context, logger *slog.Logger, args []string) ([]string, error) {
	detector := repository.New()
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		if repo, err := detector.DetectRepository(arg); err == nil {
			attrs := []any{"kind", repo.Kind, "root", repo.Root, "origin", repo.Origin}
			if repo.Info != nil {
				attrs = append(attrs, "project", repo.Info.Name, "type", repo.Info.Type)
			}
			logger.Debug("repository detected", attrs...)
		}
		sources, err := detector.SourceFiles(ctx, arg)
		if err != nil {
			return nil, err
		}
		files = append(files, sources...)
	}
	return files, nil
}
