package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/biopax-core/biopax"
)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [CLASS]",
		Short: "List the BioPAX classes, or the property table of one class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runClassesList()
			}
			return runClassesDescribe(args[0])
		},
	}
}

func runClassesList() error {
	for _, class := range biopax.Classes() {
		fmt.Println(class)
	}
	return nil
}

func runClassesDescribe(name string) error {
	class := biopax.Class(name)
	if !biopax.Known(class) {
		return fmt.Errorf("unknown class: %s", name)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tKIND\tTYPE\tCARDINALITY")
	for _, prop := range biopax.Properties(class) {
		cardinality := "single"
		if prop.Many {
			cardinality = "multiple"
		}
		dataType := "-"
		if prop.Kind != biopax.KindReference {
			dataType = string(prop.Type)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", prop.Name, prop.Kind, dataType, cardinality)
	}
	return w.Flush()
}
