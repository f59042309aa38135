package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-leadform/pkg/leads"
)

var errInvalidSubmission = errors.New("submission is not valid")

func newValidateCmd(app *cli) *cobra.Command {
	var (
		flags formFlags
		file  string
	)
	cmd := &cobra.Command{
		Use:   "validate <school>",
		Short: "Validate submitted values against a school form",
		Long: `Validate reads a JSON object of input values from --file (or stdin when
the flag is "-" or omitted) and checks it against the resolved form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			form, err := app.orch.Form(cmd.Context(), flags.request(args[0]))
			if err != nil {
				return err
			}

			result := leads.Validate(form.Fields, values)
			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintln(out, "ok")
				return nil
			}
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "%s\t%s\t%s\n", issue.Field, issue.Rule, issue.Message)
			}
			return errInvalidSubmission
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&file, "file", "-", "JSON file holding the values")
	return cmd
}

func readValues(stdin io.Reader, file string) (map[string]any, error) {
	var (
		raw []byte
		err error
	)
	if file == "" || file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	return values, nil
}
