package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "slottable"

const envErrorPrefix = "error mapping environment variables to command flags"

// checkEnvironmentVariables sets flags that were not given on the command
// line from SLOTTABLE_<FLAG> (root) or SLOTTABLE_<COMMAND>_<FLAG>
// (subcommands). Dashes in flag names become underscores.
func checkEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	if command.Name() == envPrefix {
		v.SetEnvPrefix(envPrefix)
	} else {
		v.SetEnvPrefix(fmt.Sprintf("%s_%s", envPrefix, command.Name()))
	}

	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", envErrorPrefix, strings.Join(errs, "; "))
}
