package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedigraph/pedigraph/ped"
)

// getRootCmd wires the command tree. Extracted as a function to
// facilitate testing and dynamic command registration.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: Version,
		Use:     "pedigraph",
		Short:   "Validate, repair and recode pedigree tables",
		Long: `pedigraph prepares parent/offspring pedigree tables for genetic
mixed-model estimation.

A usable pedigree must carry dense consecutive codes 1..N, a row for
every referenced ancestor, and every parent listed before its offspring.
Real pedigrees rarely do. pedigraph diagnoses each violation separately
(check) and repairs an arbitrary table into canonical form with a
reversible identifier mapping (recode).`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getRecodeCmd())
	return rootCmd
}

// sharedFlags registers the flags common to check and recode.
func sharedFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("columns", "c", "1,2,3",
		"three column selectors: names, or 1-based positions (self,parentA,parentB)")
	cmd.Flags().StringSliceP("missing", "m", nil,
		`extra missing-value tokens (always treated as missing: "", "NA", ".", 0)`)
}

// loadTable reads a headered CSV file into a ped table and resolves the
// --columns selector.
func loadTable(cmd *cobra.Command, path string) (*ped.MemTable, ped.Columns, error) {
	colSpec, _ := cmd.Flags().GetString("columns")
	missing, _ := cmd.Flags().GetStringSlice("missing")

	f, err := os.Open(path)
	if err != nil {
		return nil, ped.Columns{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, ped.Columns{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, ped.Columns{}, fmt.Errorf("read %s: %w", path, ped.ErrBadTable)
	}

	table, err := ped.TableFromRecords(records[0], records[1:], missing...)
	if err != nil {
		return nil, ped.Columns{}, err
	}
	cols, err := ped.ParseColumns(strings.Split(colSpec, ","))
	if err != nil {
		return nil, ped.Columns{}, err
	}
	return table, cols, nil
}
