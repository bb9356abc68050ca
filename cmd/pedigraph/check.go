package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pedigraph/pedigraph/check"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check PEDIGREE.csv",
		Short: "Report the four structural pedigree properties",
		Long: `Check evaluates the four independent structural properties of a
pedigree CSV and prints one verdict per line:

  consecutive       identifiers form the dense integer range 1..N
  complete          every referenced parent has a row of its own
  ancestors_precede every parent's row comes before its offspring's
  sorted            the individual column is non-decreasing

The file is never modified; a failing property is a verdict, not an
error. A final "canonical" line says whether all four hold.

Examples:
  pedigraph check herd.csv
  pedigraph check --columns animal,sire,dam herd.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
	sharedFlags(checkCmd)
	return checkCmd
}

func runCheck(cmd *cobra.Command, path string) error {
	table, cols, err := loadTable(cmd, path)
	if err != nil {
		return err
	}
	rep, err := check.Pedigree(table, cols)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "consecutive       %v\n", rep.Consecutive)
	fmt.Fprintf(out, "complete          %v\n", rep.Complete)
	fmt.Fprintf(out, "ancestors_precede %v\n", rep.AncestorsPrecede)
	fmt.Fprintf(out, "sorted            %v\n", rep.Sorted)
	fmt.Fprintf(out, "canonical         %v\n", rep.Canonical())
	return nil
}
