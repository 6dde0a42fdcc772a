package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "pfafmt [file ...]",
		Short:        "pfafmt",
		SilenceUsage: true,
		Long:         `Non-interactive whitespace formatter for the input language.`,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.InfoLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args)
		},
	}

	verbose    bool
	dumpTokens bool
	log        = logrus.New()
)

// Execute runs the root command; it is the single entry point, with no
// subcommands -- the CLI is a thin collaborator around the pfafmt
// package, not a command suite.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every file opened, skipped, rewritten, or left unchanged")
	rootCmd.PersistentFlags().BoolVar(&dumpTokens, "dump-tokens", false, "print each logical line's token stream to stderr before formatting it")
	return rootCmd.Execute()
}
