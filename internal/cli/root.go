package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/console"
	"github.com/vaultpass/passcheck/internal/password"
	"github.com/vaultpass/passcheck/internal/service"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

type rootOptions struct {
	json bool
	seed uint64
}

// NewRootCommand builds the passcheck command tree. Flag defaults come from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &rootOptions{json: cfg.Output == config.OutputJSON}
	if cfg.Seed != nil {
		opts.seed = *cfg.Seed
	}

	cmd := &cobra.Command{
		Use:   "passcheck [password]",
		Short: "Check password strength and suggest a stronger one",
		Long: `Scores a password against five rules: at least 8 characters, an
uppercase letter, a lowercase letter, a digit and a special character.
Weak and medium passwords get a list of fixes and a generated suggestion.

Without an argument the password is read from a prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewCheckerService(opts.generator(cmd, cfg))
			return runCheck(cmd, args, svc, opts.json)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.json, "json", opts.json, "write results as JSON")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for reproducible suggestions")

	cmd.AddCommand(newGenerateCommand(opts, cfg))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// generator honors --seed first, then the configured seed, then falls back
// to a randomly seeded stream.
func (o *rootOptions) generator(cmd *cobra.Command, cfg config.Config) *password.Generator {
	if cmd.Flags().Changed("seed") || cfg.Seed != nil {
		return password.NewSeededGenerator(o.seed)
	}
	return password.NewGenerator(nil)
}

func runCheck(cmd *cobra.Command, args []string, svc *service.CheckerService, asJSON bool) error {
	out := cmd.OutOrStdout()

	// Keep stdout clean for JSON consumers.
	promptOut := out
	if asJSON {
		promptOut = cmd.ErrOrStderr()
	} else {
		fmt.Fprintln(out, console.Banner)
	}

	var pwd string
	if len(args) == 1 {
		pwd = args[0]
	} else {
		var err error
		pwd, err = console.ReadPassword(cmd.InOrStdin(), promptOut)
		if err != nil {
			return err
		}
	}

	resp := svc.Check(pwd)

	if asJSON {
		return console.RenderJSON(out, resp)
	}
	return console.RenderText(out, resp)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "passcheck %s\n", Version)
}
