package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

type decodeResult struct {
	Source  string     `json:"source"`
	ID      string     `json:"id,omitempty"`
	Type    event.Type `json:"type,omitempty"`
	Family  string     `json:"family,omitempty"`
	Payload string     `json:"payload,omitempty"`
	Error   string     `json:"error,omitempty"`
	Kind    string     `json:"kind,omitempty"`
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [files...]",
		Short: "Decode webhook envelopes and report the dispatched payload",
		Long: `Decode one or more webhook envelopes. With no files, or with "-",
the envelope is read from standard input. Lenient decoding warnings
are written to standard error.`,
		RunE: runDecode,
	}

	cmd.Flags().Bool("strict", false, "Reject unknown types and mismatched payloads")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	asJSON, _ := cmd.Flags().GetBool("json")
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	if len(args) == 0 {
		args = []string{"-"}
	}

	results := make([]decodeResult, 0, len(args))
	failed := 0
	for _, src := range args {
		data, err := readSource(cmd.InOrStdin(), src)
		if err != nil {
			return err
		}
		res := decodeOne(src, data, strict, logger)
		if res.Error != "" {
			failed++
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SOURCE\tID\tTYPE\tFAMILY\tPAYLOAD")
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(tw, "%s\t%s\t%s\t-\terror: %s\n", r.Source, r.ID, r.Type, r.Error)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Source, r.ID, r.Type, r.Family, r.Payload)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d envelopes failed to decode", failed, len(results))
	}
	return nil
}

func decodeOne(src string, data []byte, strict bool, logger *slog.Logger) decodeResult {
	var (
		ev  *event.Event
		err error
	)
	if strict {
		ev, err = event.ParseStrict(data)
	} else {
		ev, err = event.Parse(data, event.WithLogger(logger))
	}

	res := decodeResult{Source: src}
	if err != nil {
		res.Error = err.Error()
		res.Kind = event.KindOf(err).String()
		var de *event.DecodeError
		if errors.As(err, &de) {
			res.ID = de.EventID
			res.Type = de.Type
		}
		return res
	}

	res.ID = ev.ID
	res.Type = ev.Type
	res.Payload = event.PayloadName(ev.Payload)
	if f, ok := event.FamilyOf(ev.Type); ok {
		res.Family = string(f)
	} else {
		res.Family = "-"
	}
	return res
}

func readSource(stdin io.Reader, src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}
