package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/biopax-core/internal/domain/services"
	"github.com/ersonp/biopax-core/owl"
)

type demoFlags struct {
	output string
	save   string
}

func newDemoCmd() *cobra.Command {
	var flags demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the example model and export it as OWL",
		Long: "Builds the Erk1 phosphorylation example model, renders it as " +
			"RDF/XML and prints it to stdout, writes it to a file, or archives it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.save, "save", "s", "", "Archive the model under this name")

	return cmd
}

// validateDemoFlags rejects flag combinations with no single meaning.
func validateDemoFlags(flags demoFlags) error {
	if flags.save != "" && flags.output != "" {
		return fmt.Errorf("--save and --output are mutually exclusive")
	}
	return nil
}

func runDemo(cmd *cobra.Command, flags demoFlags) error {
	ctx := cmd.Context()

	if err := validateDemoFlags(flags); err != nil {
		return err
	}

	model, err := services.BuildExample()
	if err != nil {
		return fmt.Errorf("building example model: %w", err)
	}

	if flags.save != "" {
		return withDeps(func(d *Deps) error {
			record, err := d.ArchiveHandler.HandleSave(ctx, flags.save, model)
			if err != nil {
				return err
			}
			d.Log.Info("model archived",
				"name", record.Name,
				"id", record.ID,
				"entities", record.EntityCount,
			)
			return nil
		})
	}

	document, err := owl.Render(model)
	if err != nil {
		return fmt.Errorf("rendering model: %w", err)
	}

	if flags.output == "" {
		fmt.Print(document)
		return nil
	}

	if err := os.WriteFile(flags.output, []byte(document), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Wrote %s (%d entities)\n", flags.output, model.Len())

	return nil
}
