package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/domain"
)

// newCreateCmd creates the create command.
func newCreateCmd(d deps, opts *rootOptions) *cobra.Command {
	var actor, owner, image, name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a container for a user",
		Long: `Create a container bound to --owner, or to --actor when no owner is
given. A user owns at most one live container.`,
		Example: `  boxkeep create --actor 1234 --name dev-box
  boxkeep create --actor 1234 --owner 5678 --image debian:12 --name alice-box`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withControlPlane(cmd, d, func(ctx context.Context, cp ControlPlane) error {
				rec, err := cp.Bindings().Create(ctx, domain.NormalizeOwner(actor), domain.NormalizeOwner(owner), image, name)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if err := cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Container %s created for %s", rec.Name, rec.Owner))); err != nil {
					return err
				}
				return renderRecord(out, dto.FromRecord(*rec))
			})
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Identity running the command (required)")
	cmd.Flags().StringVar(&owner, "owner", "", "User the container is created for (defaults to --actor)")
	cmd.Flags().StringVar(&image, "image", "", "Image to run (defaults to runtime.default_image)")
	cmd.Flags().StringVar(&name, "name", "", "Container name (required)")
	_ = cmd.MarkFlagRequired("actor")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// newDestroyCmd creates the destroy command.
func newDestroyCmd(d deps, opts *rootOptions) *cobra.Command {
	var actor string
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy [owner]",
		Short: "Destroy a user's container",
		Long: `Stop and remove the container owned by [owner], or by --actor when no
owner is given. The record is kept as destroyed for history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := actor
			if len(args) == 1 {
				target = args[0]
			}

			if !yes {
				ok, err := d.confirm(fmt.Sprintf("Destroy the container owned by %s?", target))
				if err != nil {
					return err
				}
				if !ok {
					return cliWriteLine(cmd.OutOrStdout(), cliRenderInfo("Aborted, nothing was destroyed"))
				}
			}

			return opts.withControlPlane(cmd, d, func(ctx context.Context, cp ControlPlane) error {
				rec, err := cp.Bindings().Destroy(ctx, domain.NormalizeOwner(actor), domain.NormalizeOwner(target))
				if err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(),
					cliRenderSuccess(fmt.Sprintf("Container %s destroyed for %s", rec.Name, rec.Owner)))
			})
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Identity running the command (required)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}

// newStatusCmd creates the status command.
func newStatusCmd(d deps, opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status <owner>",
		Short: "Show a user's container and its live state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			return opts.withControlPlane(cmd, d, func(ctx context.Context, cp ControlPlane) error {
				view, err := cp.Bindings().Status(ctx, domain.NormalizeOwner(args[0]))
				if err != nil {
					return err
				}
				return renderView(cmd.OutOrStdout(), format, dto.FromView(*view))
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

// newListCmd creates the list command.
func newListCmd(d deps, opts *rootOptions) *cobra.Command {
	var all bool
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List containers with their live state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			return opts.withControlPlane(cmd, d, func(ctx context.Context, cp ControlPlane) error {
				views, err := cp.Bindings().List(ctx, domain.ListOptions{IncludeDestroyed: all})
				if err != nil {
					return err
				}
				return renderViews(cmd.OutOrStdout(), format, dto.FromViews(views))
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include destroyed records")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}
