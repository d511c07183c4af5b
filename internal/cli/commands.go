package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"log-analyzer/internal/dto"
	"log-analyzer/internal/model"
	"log-analyzer/internal/output"
)

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <file>",
		Short: "Print every record of a log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(cmd, args[0])
			if err != nil {
				return err
			}
			table, err := p.Read()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return output.RenderTable(r, table)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		doExport bool
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "search <file> <substring>",
		Short: "Print records whose message contains a substring",
		Long: `Print records whose message contains the substring. Matching is literal
and case-sensitive.

With --export (or --out) the matches are also written to a file. The default
destination replaces ".log" in the source path with "_<substring>.csv".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(cmd, args[0])
			if err != nil {
				return err
			}
			substring := args[1]

			var table model.LogTable
			if doExport || outPath != "" {
				table, _, err = p.SearchExport(substring, outPath)
			} else {
				table, err = p.Search(substring)
			}
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return output.RenderTable(r, table)
		},
	}
	cmd.Flags().BoolVarP(&doExport, "export", "e", false, "write the matches to a file")
	cmd.Flags().StringVar(&outPath, "out", "", "export destination (.csv or .xlsx); implies --export")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count <file> <substring>",
		Short: "Count records whose message contains a substring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(cmd, args[0])
			if err != nil {
				return err
			}
			count, err := p.Count(args[1])
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(dto.LogCountResponse{Query: args[1], Count: count})
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export every record of a log file",
		Long: `Export every record to a delimited file with a "timestamp,log" header.
The default destination replaces ".log" in the source path with ".csv". A
destination ending in .xlsx produces a workbook instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(cmd, args[0])
			if err != nil {
				return err
			}
			dest, err := p.ExportAll(outPath)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"path": dest})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "export destination (.csv or .xlsx)")
	return cmd
}
