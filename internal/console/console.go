package console

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/password"
	"golang.org/x/term"
)

const (
	Banner = "Password Complexity Checker"
	Prompt = "Enter a password to evaluate: "
)

var ErrNoInput = errors.New("no password provided")

// ReadPassword prompts on out and reads one password from in. Terminal input
// is read without echo.
func ReadPassword(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, Prompt); err != nil {
		return "", err
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// RenderText writes a check result in the interactive format.
func RenderText(w io.Writer, resp model.CheckResponse) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nPassword Strength: %s\n", resp.Strength)
	fmt.Fprintf(bw, "Score: %d/%d\n", resp.Score, password.MaxScore)

	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(bw, "\nSuggestions to improve your password:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(bw, "- %s\n", s)
		}
		if resp.SuggestedPassword != "" {
			fmt.Fprintf(bw, "\nSuggested Strong Password: %s\n", resp.SuggestedPassword)
		}
	} else {
		fmt.Fprintln(bw, "Great job! Your password is strong.")
	}

	return bw.Flush()
}

// RenderJSON writes v as indented JSON followed by a newline.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
