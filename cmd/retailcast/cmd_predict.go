package main

import (
	"errors"
	"fmt"
	"strings"

	"retailcast/internal/forecast"
	"retailcast/internal/predictor"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	predictCategory string
	predictDate     string
	predictPlain    bool
)

// predictCmd runs one prediction without the interactive form
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Request a single prediction and print it",
	Long: `Sends one prediction request for a category and a date and prints the result.

The date is the day the predictor works on; the printed date is shown one
year later, as in the interactive form.

Example:
  retailcast predict --category Beauty --date 2023-06-15`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&predictCategory, "category", "c", "", "Product category (Electronics, Beauty, Clothing)")
	predictCmd.Flags().StringVarP(&predictDate, "date", "d", "", "Date as YYYY-MM-DD")
	predictCmd.Flags().BoolVar(&predictPlain, "plain", false, "Print only the result sentence")
}

func runPredict(cmd *cobra.Command, args []string) error {
	state := forecast.State{}
	if predictCategory != "" {
		c, err := forecast.ParseCategory(predictCategory)
		if err != nil {
			return err
		}
		state.SetCategory(c)
	}
	if predictDate != "" {
		d, err := forecast.ParseDate(predictDate)
		if err != nil {
			return err
		}
		state.SetDate(d)
	}

	req, ok := state.BeginSubmit()
	if !ok {
		return errors.New(state.Err)
	}

	value, err := newClient().Predict(cmd.Context(), req)
	if err != nil {
		state.Fail(predictor.UserMessage(err))
		return fmt.Errorf("%s: %w", state.Err, err)
	}
	state.Succeed(value)

	out := cmd.OutOrStdout()
	if predictPlain {
		fmt.Fprintln(out, state.Result())
		return nil
	}

	rendered, err := renderResult(state)
	if err != nil {
		fmt.Fprintln(out, state.Result())
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}

// renderResult formats a successful state as markdown for the terminal.
func renderResult(state forecast.State) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Sales forecast\n\n")
	sb.WriteString("| Category | Date | Predicted units |\n")
	sb.WriteString("|---|---|---:|\n")
	fmt.Fprintf(&sb, "| %s | %s | %.2f |\n\n", state.Category, state.DisplayDate(), *state.Prediction)
	fmt.Fprintf(&sb, "**%s**\n", state.Result())

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(sb.String())
}
