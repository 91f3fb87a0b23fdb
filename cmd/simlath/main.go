// SPDX-License-Identifier: MIT

// Command simlath loads property graphs into a local column-family store,
// computes Jaccard similarity edges over them and dumps the result.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simlath/config"
	"github.com/katalvlaran/simlath/storage/boltstore"
)

// Version is set by build flags.
var Version = "dev"

// app carries the state shared by subcommands after PersistentPreRunE.
type app struct {
	cfgFile   string
	storePath string
	verbose   bool

	cfg    *config.Config
	logger *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "simlath",
		Short:   "Jaccard similarity over stored property graphs",
		Version: Version,
		Long: `simlath keeps property graphs in a bbolt column-family store and
derives similarity edges between vertices that share neighbours.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "store file (overrides store.path)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newLoadCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newJaccardCmd(a))
	root.AddCommand(newDumpCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.storePath != "" {
		cfg.Store.Path = a.storePath
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	logger.SetOutput(os.Stderr)
	if a.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	a.cfg, a.logger = cfg, logger
	return nil
}

// openStore opens the configured store; the caller closes it.
func (a *app) openStore() (*boltstore.Store, error) {
	opts := append(a.cfg.StoreOptions(), boltstore.WithLogger(a.logger))
	s, err := boltstore.Open(a.cfg.Store.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", a.cfg.Store.Path, err)
	}
	a.logger.WithField("path", s.Path()).Debug("store opened")
	return s, nil
}

// closeStore closes s and keeps the first error.
func closeStore(s *boltstore.Store, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
