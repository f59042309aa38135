package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/prompt"
)

func newFillCmd(app *cli) *cobra.Command {
	var (
		flags  formFlags
		submit bool
	)
	cmd := &cobra.Command{
		Use:   "fill <school>",
		Short: "Fill a school form interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd, app, prompt.NewSurveyDriver(cmd.ErrOrStderr()), flags, args[0], submit)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&submit, "submit", false, "Hand the accepted lead to the log sink")
	return cmd
}

func runFill(cmd *cobra.Command, app *cli, driver prompt.Driver, flags formFlags, slug string, submit bool) error {
	ctx := cmd.Context()
	form, err := app.orch.Form(ctx, flags.request(slug))
	if err != nil {
		return err
	}
	if err := driver.Info(ctx, fmt.Sprintf("%s (%s)", form.SchoolName, form.Flow)); err != nil {
		return err
	}

	values, err := prompt.Fill(ctx, driver, form.Fields)
	if err != nil {
		return err
	}
	result := leads.Validate(form.Fields, values)
	if !result.Valid {
		return fmt.Errorf("%w: %s", errInvalidSubmission, result.Error())
	}

	lead := leads.New(form.School, form.SchoolID, form.Flow, form.ProgramID, result.Values)
	if submit {
		sink := leads.NewLogSink(app.logger)
		if err := sink.Submit(ctx, lead); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(lead)
}
