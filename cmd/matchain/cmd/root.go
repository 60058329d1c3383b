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

const envPrefix = "MATCHAIN"

type rootOpts struct {
	cfgFile string
	debug   bool
}

var longRootCmdDescription = `matchain finds the cheapest way to group a chain of matrix products.

Every grouping of A·B·C·… yields the same matrix, but the number of scalar
multiplications can differ by orders of magnitude. Shapes are given as RxC,
optionally labeled (A=400x300); adjacent shapes must agree on the inner size.

Every flag can also be set in the config file or through a MATCHAIN_<FLAG>
environment variable, e.g. MATCHAIN_OUTPUT=json.
`

// NewRootCmd assembles the matchain command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "matchain",
		Short:         "Plan and evaluate matrix multiplication chains",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "turn on debug logging")
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(newPlanCmd(v), newEvalCmd(v))
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

// Execute runs the command tree; it is called by main.main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("matchain: %v", err)
		os.Exit(1)
	}
}

// initConfig reads the config file, if any, and environment variables.
func initConfig(v *viper.Viper, opts *rootOpts) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", opts.cfgFile)
		}
	}
	initLogger(v.GetBool("debug"))
	logrus.Debugf("config file: %q", v.ConfigFileUsed())

	return nil
}

func initLogger(debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}
