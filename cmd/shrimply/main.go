package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	shrimply "github.com/shrimply-lang/shrimply"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "shrimply",
		Short: "shrimply is an interpreter for the shrimply scripting language",
	}
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	root.AddCommand(runCmd(), getCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <source-file> [args...]",
		Short: "run a shrimply source file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return runFile(args[0], args[1:])
		},
	}
}

func getCmd() *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "get <git-url>",
		Short: "fetch a git-hosted module into the local module cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			path, err := shrimply.FetchGitModule(args[0], ref)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "branch, tag, or commit to pin")
	return cmd
}

func runFile(path string, args []string) error {
	entryDir := filepath.Dir(path)
	loader, err := shrimply.NewLoader(entryDir)
	if err != nil {
		return errors.Wrapf(err, "setting up loader for %s", path)
	}
	mod, err := loader.Load(path)
	if err != nil {
		printRuntimeDiagnostic(err)
		os.Exit(1)
	}
	if err := shrimply.RunMain(mod, args); err != nil {
		printRuntimeDiagnostic(err)
		os.Exit(1)
	}
	return nil
}

func printRuntimeDiagnostic(err error) {
	if re, ok := err.(*shrimply.RuntimeError); ok {
		fmt.Fprintln(os.Stderr, re.Backtrace())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
