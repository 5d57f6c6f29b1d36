package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/little-samo/samo-api/pkg/contracts"
)

var (
	contractsJSON   bool
	contractsPrefix string
)

func init() {
	rootCmd.AddCommand(contractsCmd)
	contractsCmd.Flags().BoolVar(&contractsJSON, "json", false, "print the catalog as JSON")
	contractsCmd.Flags().StringVar(&contractsPrefix, "prefix", "", "only list operations starting with this prefix")
}

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List every HTTP operation and WebSocket event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoints := lo.Filter(contracts.Catalog(), func(e contracts.Endpoint, _ int) bool {
			return strings.HasPrefix(e.Operation, contractsPrefix)
		})
		messages := lo.Filter(contracts.WSMessages(), func(m contracts.WSMessage, _ int) bool {
			return strings.HasPrefix(m.Event, contractsPrefix)
		})

		out := cmd.OutOrStdout()
		if contractsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"endpoints": endpoints, "websocket": messages})
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tMETHOD\tPATH\tAUTH")
		for _, e := range endpoints {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Operation, e.Method, e.Path, e.Auth)
		}
		for _, m := range messages {
			fmt.Fprintf(w, "%s\tWS\t-\t-\n", m.Event)
		}
		return w.Flush()
	},
}
