package cli

import (
	"github.com/spf13/cobra"
)

// newServeCmd creates the serve command.
func newServeCmd(d deps, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the boxkeep server",
		Long: `Start the HTTP API used by chat front-ends, together with the web
terminal gateway. The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(d)
			if err != nil {
				return err
			}
			return d.serve(commandContext(cmd), cfg)
		},
	}
}
