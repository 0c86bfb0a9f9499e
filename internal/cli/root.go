// Package cli implements the subnetcalc command tree on top of the
// subnet engine.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

var rootCmd = &cobra.Command{
	Use:           "subnetcalc",
	Short:         "IPv4/IPv6 subnet calculator",
	Long:          "subnetcalc computes subnet properties from address/CIDR input: network and broadcast addresses, host ranges, masks, containment and subnet enumeration.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	format  outputFormat
	verbose bool
	quiet   bool
	logger  = setupLogger(false, false)
)

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP((*string)(&format), "output", "o", string(outHuman), "output format: human|json|yaml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "log errors only")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		logger = setupLogger(verbose, quiet)
	}
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(subnetsCmd)
	rootCmd.AddCommand(supernetCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(newVersionCommand())
}

func setupLogger(verbose, quiet bool) *slog.Logger {
	var level slog.Level

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func render(v any) error {
	w := rootCmd.OutOrStdout()
	switch format {
	case outHuman:
		fmt.Fprintln(w, v)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}
