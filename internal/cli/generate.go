package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/console"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
)

// MaxCount bounds a single generate run.
const MaxCount = 1000

var ErrInvalidCount = errors.New("count must be between 1 and 1000")

func newGenerateCommand(root *rootOptions, cfg config.Config) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate strong password suggestions",
		Long: `Prints passwords of 12 to 16 characters, each with at least two
uppercase letters, four lowercase letters, two digits and two special
characters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 || count > MaxCount {
				return fmt.Errorf("%w, got %d", ErrInvalidCount, count)
			}

			svc := service.NewCheckerService(root.generator(cmd, cfg))

			suggestions := make([]model.GenerateResponse, 0, count)
			for i := 0; i < count; i++ {
				suggestions = append(suggestions, svc.Suggest())
			}

			out := cmd.OutOrStdout()
			if root.json {
				return console.RenderJSON(out, suggestions)
			}
			for _, s := range suggestions {
				if _, err := fmt.Fprintln(out, s.Password); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")

	return cmd
}
