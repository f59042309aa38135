package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-leadform/pkg/orchestrator"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/school"
)

// formFlags are the lookup flags shared by commands that resolve a form.
type formFlags struct {
	program string
	flow    string
}

func (f *formFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.program, "program", "p", "", "Program id the visitor picked")
	cmd.Flags().StringVar(&f.flow, "flow", "", "Page flow (default: baseFullForm)")
}

func (f *formFlags) request(slug string) orchestrator.Request {
	return orchestrator.Request{
		School:  school.Slug(slug),
		Flow:    school.Flow(f.flow),
		Program: program.New(f.program),
	}
}

func newFieldsCmd(app *cli) *cobra.Command {
	var (
		flags  formFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "fields <school>",
		Short: "Print the resolved form for a school and program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(args[0])
			req.Renderer = format
			out, err := app.orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output renderer (json, yaml)")
	return cmd
}
