package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/nodock/internal/app"
	"github.com/vk/nodock/internal/descriptor"
)

// envPrefix is prepended to every flag name to form its environment
// variable, e.g. --log-level -> NODOCK_LOG_LEVEL.
const envPrefix = "NODOCK"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (help or usage was
// printed), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var config *app.Config
	cmd := &cobra.Command{
		Use:   "nodock [flags] DESCRIPTOR_PATH",
		Short: "Translate a workload descriptor into a Nomad job spec.",
		Long: `nodock - translate a workload descriptor into a Nomad job spec.

DESCRIPTOR_PATH is a TOML (default) or YAML (.yaml, .yml) file describing
ports, services, volumes and containers. The generated HCL job spec is
written to stdout unless --output is given.

Every flag can also be set through the environment as NODOCK_<FLAG>,
for example NODOCK_LOG_LEVEL=debug.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				slog.Debug("No descriptor path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := app.NewConfig(app.Config{
				DescriptorPath: args[0],
				OutputPath:     v.GetString("output"),
				Format:         descriptor.Format(v.GetString("format")),
				LogFormat:      v.GetString("log-format"),
				LogLevel:       v.GetString("log-level"),
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Write the job spec to this file instead of stdout.")
	flags.StringP("format", "f", "", "Descriptor format: 'toml' or 'yaml'. Detected from the file extension if empty.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := v.BindPFlags(flags); err != nil {
		return nil, false, err
	}

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
