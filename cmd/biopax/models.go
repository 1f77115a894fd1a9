package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the model archive",
		Long:  "List, show, delete or search archived models.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsList(cmd)
		},
	}

	cmd.AddCommand(newModelsListCmd())
	cmd.AddCommand(newModelsShowCmd())
	cmd.AddCommand(newModelsDeleteCmd())
	cmd.AddCommand(newModelsFindCmd())
	cmd.AddCommand(newModelsEntitiesCmd())

	return cmd
}

func newModelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsList(cmd)
		},
	}
}

func runModelsList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.ArchiveHandler.HandleList(ctx)
		if err != nil {
			return fmt.Errorf("listing models: %w", err)
		}

		if result.Total == 0 {
			fmt.Println("No archived models.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tENTITIES\tCREATED\tID")
		for _, m := range result.Models {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				m.Name, m.EntityCount, m.CreatedAt.Format("2006-01-02 15:04"), m.ID)
		}
		return w.Flush()
	})
}

func newModelsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print the OWL document of an archived model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				record, err := d.ArchiveHandler.HandleShow(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Print(record.Document)
				return nil
			})
		},
	}
}

func newModelsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an archived model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.ArchiveHandler.HandleDelete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted model: %s\n", args[0])
				return nil
			})
		},
	}
}

func newModelsFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find UID",
		Short: "Find archived models containing an entity uid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				result, err := d.ArchiveHandler.HandleFind(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if result.Total == 0 {
					fmt.Printf("No archived models contain %q.\n", args[0])
					return nil
				}
				for _, m := range result.Models {
					fmt.Println(m.Name)
				}
				return nil
			})
		},
	}
}

func newModelsEntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities NAME",
		Short: "List the entities of an archived model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				rows, err := d.ArchiveHandler.HandleEntities(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "POSITION\tCLASS\tUID")
				for _, row := range rows {
					fmt.Fprintf(w, "%d\t%s\t%s\n", row.Position, row.Class, row.UID)
				}
				return w.Flush()
			})
		},
	}
}
