package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/little-samo/samo-api/pkg/models"
)

var errUndecodable = errors.New("some events could not be decoded")

var eventsKind string

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsDecodeCmd)
	eventsDecodeCmd.Flags().StringVar(&eventsKind, "kind", "auto", "event family: auto, location, user or item")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Work with realtime event streams",
}

var eventsDecodeCmd = &cobra.Command{
	Use:   "decode [file|-]",
	Short: "Decode JSON lines of events and summarize their types",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()
		counts := map[string]int{}
		failed := 0

		scanner := bufio.NewScanner(bytes.NewReader(data))
		scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
		line := 0
		for scanner.Scan() {
			line++
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}
			kind, typ, err := decodeEvent(eventsKind, raw)
			if err != nil {
				failed++
				fmt.Fprintf(errOut, "line %d: %v\n", line, err)
				continue
			}
			counts[kind+"/"+typ]++
			fmt.Fprintf(out, "%d\t%s\t%s\n", line, kind, typ)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read events: %w", err)
		}

		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\nEVENT\tCOUNT")
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%d\n", k, counts[k])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d", errUndecodable, failed)
		}
		return nil
	},
}

// decodeEvent decodes one event and returns its family and type tag. In
// auto mode the family is picked by the id member the event carries.
func decodeEvent(kind string, raw []byte) (string, string, error) {
	if kind == "auto" {
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return "", "", fmt.Errorf("decode event: %w", err)
		}
		switch {
		case members["locationId"] != nil:
			kind = "location"
		case members["userId"] != nil:
			kind = "user"
		case members["itemId"] != nil:
			kind = "item"
		default:
			return "", "", errors.New("cannot tell event family, use --kind")
		}
	}

	switch kind {
	case "location":
		ev, err := models.DecodeLocationEvent(raw)
		if err != nil {
			return "", "", err
		}
		return kind, string(ev.EventType()), nil
	case "user":
		ev, err := models.DecodeUserEvent(raw)
		if err != nil {
			return "", "", err
		}
		typ := string(ev.EventType())
		if ie, ok := ev.(*models.UserItemEvent); ok && ie.ItemEvent != nil {
			typ += ":" + string(ie.ItemEvent.EventType())
		}
		return kind, typ, nil
	case "item":
		ev, err := models.DecodeItemEvent(raw)
		if err != nil {
			return "", "", err
		}
		return kind, string(ev.EventType()), nil
	}
	return "", "", fmt.Errorf("unknown event kind %q", kind)
}
