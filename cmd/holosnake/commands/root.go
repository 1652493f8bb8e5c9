package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/holosnake/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "holosnake",
	Short:   "holosnake is a snake game steered by a pointer",
	Version: Version,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		setupLogging()
	},
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	debug   bool
	logFile = "holosnake.log"
)

func setupLogging() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithField("level", config.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "where logs go while the terminal is in use")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(spectateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
