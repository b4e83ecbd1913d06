package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

var charsetsCmd = &cobra.Command{
	Use:   "charsets",
	Short: "List the available languages and modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tMODES\tDEFAULT\tSAMPLE\tASPECT\tFONT SIZE")
		for _, name := range img2ascii.Languages() {
			cs, err := img2ascii.LookupCharset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%c\t%g\t%g\n",
				cs.Language, strings.Join(cs.ModeNames(), ","), cs.DefaultMode(),
				cs.Sample, cs.Aspect, cs.FontSize)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(charsetsCmd)
}
