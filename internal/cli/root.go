package cli

import (
	"errors"
	"fmt"

	"github.com/brandonbloom/codenamize"
	"github.com/brandonbloom/codenamize/internal/config"
	"github.com/brandonbloom/codenamize/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand().Execute()
}

type rootOptions struct {
	adjectives int
	maxChars   int
	algorithm  string
	join       string
	capitalize bool

	space          bool
	demo           bool
	listAlgorithms bool
	initConfig     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "codenamize [strings...]",
		Short:         "Consistent easier-to-remember codenames for strings and numbers",
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.adjectives, "prefix", "p", 1, "number of adjectives before the noun")
	cmd.Flags().IntVarP(&opts.maxChars, "max-chars", "m", 0, "max word characters (0 for no limit)")
	cmd.Flags().StringVarP(&opts.algorithm, "hash-algorithm", "a", "md5", "hash algorithm applied to objects")
	cmd.Flags().StringVarP(&opts.join, "join", "j", "-", "separator between words")
	cmd.Flags().BoolVarP(&opts.capitalize, "capitalize", "c", false, "capitalize words")
	cmd.Flags().BoolVar(&opts.space, "space", false, "print the codename space size for the given options")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "print sample codenames, space sizes, and self-checks")
	cmd.Flags().BoolVar(&opts.listAlgorithms, "list-algorithms", false, "list the available hash algorithms")
	cmd.Flags().BoolVar(&opts.initConfig, "init-config", false, "save the current options as config file defaults")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if err := applyConfig(cmd, opts); err != nil {
		return err
	}

	switch {
	case opts.listAlgorithms:
		return runListAlgorithms(cmd)
	case opts.demo:
		return runDemo(cmd)
	case opts.space:
		return runSpace(cmd, opts)
	case opts.initConfig:
		return runInitConfig(cmd, opts)
	}

	if len(args) == 0 {
		return cmd.Usage()
	}

	nameOpts := opts.codenameOptions()
	for _, arg := range args {
		name, err := codenamize.Codenamize(codenamize.String(arg), nameOpts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// applyConfig fills in defaults from the user config file. Flags given on
// the command line always win over the file.
func applyConfig(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Adjectives != nil && !flags.Changed("prefix") {
		opts.adjectives = *cfg.Adjectives
	}
	if cfg.MaxChars != 0 && !flags.Changed("max-chars") {
		opts.maxChars = cfg.MaxChars
	}
	if cfg.HashAlgorithm != "" && !flags.Changed("hash-algorithm") {
		opts.algorithm = cfg.HashAlgorithm
	}
	if cfg.Join != nil && !flags.Changed("join") {
		opts.join = *cfg.Join
	}
	if cfg.Capitalize && !flags.Changed("capitalize") {
		opts.capitalize = true
	}
	return nil
}

func (opts *rootOptions) codenameOptions() []codenamize.Option {
	return []codenamize.Option{
		codenamize.WithAdjectives(opts.adjectives),
		codenamize.WithMaxItemChars(opts.maxChars),
		codenamize.WithJoin(opts.join),
		codenamize.WithCapitalize(opts.capitalize),
		codenamize.WithHashAlgorithm(opts.algorithm),
	}
}

func runSpace(cmd *cobra.Command, opts *rootOptions) error {
	size, err := codenamize.SpaceSize(
		codenamize.WithAdjectives(opts.adjectives),
		codenamize.WithMaxItemChars(opts.maxChars))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), size)
	return nil
}

func runListAlgorithms(cmd *cobra.Command) error {
	for _, name := range codenamize.Algorithms() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// runInitConfig persists the effective options, config file values included,
// so later runs start from them.
func runInitConfig(cmd *cobra.Command, opts *rootOptions) error {
	path := config.Path()
	if path == "" {
		return errors.New("cannot determine config path")
	}
	adjectives := opts.adjectives
	join := opts.join
	cfg := config.Config{
		Adjectives:    &adjectives,
		MaxChars:      opts.maxChars,
		HashAlgorithm: opts.algorithm,
		Join:          &join,
		Capitalize:    opts.capitalize,
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", path)
	return nil
}
