package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           appName + " [--update] [--api path] [--sdk-index path]",
		Short:         "Check or update the SDK export inventory in an API reference page",
		Args:          rejectPositionals,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// checkArgs admits only the three flags below, so cobra's help flag is
	// never reached.
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.Bool(keyUpdate, false, "rewrite the marker region instead of checking it")
	flags.String(keyAPI, defaultAPIPath, "API reference document containing the marker region")
	flags.String(keySDKIndex, defaultSDKIndex, "SDK entry module (TypeScript file or Go package) to scan")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		return app.execute(ctx, cfg)
	}
	return cmd
}

func rejectPositionals(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &UnknownArgumentError{Arg: args[0]}
	}
	return nil
}
