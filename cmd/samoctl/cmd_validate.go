package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/little-samo/samo-api/internal/api/handlers"
	"github.com/little-samo/samo-api/internal/validation"
)

var errInvalidPayload = errors.New("payload is invalid")

var validateBodyOnly bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateBodyOnly, "body", false, "treat the input as the request body instead of a {params, query, body} envelope")
}

var validateCmd = &cobra.Command{
	Use:   "validate <operation> [file|-]",
	Short: "Validate a payload against an operation",
	Long: `Validate binds a JSON payload the way the gateway does and prints the
canonical upstream call, or the validation issues.

The payload is an envelope {"params": {...}, "query": {"name": ["v"]}, "body": {...}}
unless --body is given. WebSocket events are validated by event name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}

		var in handlers.ValidateRequest
		if validateBodyOnly {
			in.Body = data
		} else if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("decode envelope: %w", err)
		}

		resp, err := handlers.CheckPayload(args[0], in)
		if ve, ok := validation.AsError(err); ok {
			out := cmd.OutOrStdout()
			for _, is := range ve.Issues {
				path := is.Path
				if path == "" {
					path = "(root)"
				}
				fmt.Fprintf(out, "✗ %s: %s [%s]\n", path, is.Message, is.Code)
			}
			return errInvalidPayload
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}
