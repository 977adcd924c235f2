package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajack/xlsplit"
)

var (
	chunkSize  int
	headerRows int
	outputDir  string
	sheetName  string
)

var rootCmd = &cobra.Command{
	Use:   "xlsplit <file>",
	Short: "Split a spreadsheet into smaller files, repeating the header rows",
	Long: `xlsplit splits the first worksheet of an .xlsx or legacy .xls file
into multiple .xlsx files of at most --chunk-size rows each. Every
output file repeats the source's leading --header-rows rows, and merged
cells that fall entirely inside one output file are preserved.

Output files are written next to the source as <name>_part<N>.xlsx.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if headerRows < 1 {
			return fmt.Errorf("--header-rows must be at least 1")
		}
		if chunkSize <= headerRows {
			return fmt.Errorf("--chunk-size (%d) must be greater than --header-rows (%d)", chunkSize, headerRows)
		}

		var opts []xlsplit.Option
		if outputDir != "" {
			opts = append(opts, xlsplit.WithOutputDir(outputDir))
		}
		if sheetName != "" {
			opts = append(opts, xlsplit.WithSheetName(sheetName))
		}

		result, err := xlsplit.Split(args[0], chunkSize, headerRows, opts...)
		if err != nil {
			return err
		}
		fmt.Println(result.Summary())
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", 500, "maximum rows per output file, header rows included")
	rootCmd.Flags().IntVarP(&headerRows, "header-rows", "r", 1, "leading rows repeated into every output file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for output files (default: next to the source)")
	rootCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "sheet to split (default: the first sheet)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
