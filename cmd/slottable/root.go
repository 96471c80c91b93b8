package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootParams struct {
	logLevel  string
	logFormat string
}

func newRootCommand(out io.Writer) *cobra.Command {
	params := rootParams{}
	logger := logrus.New()

	root := &cobra.Command{
		Use:          envPrefix,
		Short:        "Render and serve HTML tables described in YAML",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkEnvironmentVariables(cmd); err != nil {
				return err
			}
			return configureLogger(logger, params)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&params.logLevel, "log-level", "info", "set log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&params.logFormat, "log-format", "text", "set log format: text or json")

	root.AddCommand(
		newRenderCommand(),
		newServeCommand(logger),
		newVersionCommand(),
	)
	return root
}

func configureLogger(logger *logrus.Logger, params rootParams) error {
	level, err := getLevel(params.logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetFormatter(getFormatter(params.logFormat))
	return nil
}

func getLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

func getFormatter(format string) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	default:
		return &logrus.TextFormatter{FullTimestamp: true}
	}
}
