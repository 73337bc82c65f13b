// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOpts struct {
	cfgFile string
	debug   bool
}

var longRootCmdDescription = `meshwalk builds tile meshes (polygons, fans, quad, triangle and hex grids)
as half-edge topologies and runs traversals over them: ordered walks,
region growing and face-to-face paths.

Every flag can also be set from a config file (--config) or from an
environment variable prefixed MESHWALK_, e.g. MESHWALK_ROWS=8.
`

// NewRootCmd returns the meshwalk command tree bound to a fresh viper instance.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "meshwalk",
		Short:         "Build tile meshes and walk their topology.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "turn on debug logging")
	pf.StringP("output", "o", formatTable, "output format: table or yaml")
	pf.String("shape", shapeGrid, "mesh shape: polygon, fan, grid, trigrid or hexgrid")
	pf.Int("rows", 4, "grid rows")
	pf.Int("cols", 4, "grid columns")
	pf.Int("sides", 6, "polygon sides or fan triangles")

	rootCmd.AddCommand(
		NewMeshCmd(v),
		NewWalkCmd(v),
		NewRegionsCmd(v),
		NewPathCmd(v),
	)
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("meshwalk: %v", err)
		os.Exit(1)
	}
}

// initConfig wires flags, environment and the optional config file into v
// and sets up logging.
func initConfig(cmd *cobra.Command, v *viper.Viper, opts *rootOpts) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix("MESHWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", opts.cfgFile)
		}
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}
	return nil
}
