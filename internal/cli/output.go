package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// valueRow is the serialized form of a single-number result.
type valueRow struct {
	Input string `json:"input" yaml:"input"`
	Value uint64 `json:"value" yaml:"value"`
}

// reportRow is the serialized form of an analyze result.
type reportRow struct {
	Input  string           `json:"input" yaml:"input"`
	Report *pipeloop.Report `json:"report" yaml:"report"`
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, table, json or yaml)", format)
}

// writeValues prints one number per input. Plain text of a single input is
// just the number.
func writeValues(w io.Writer, format, label string, results []result[uint64]) error {
	switch format {
	case formatText:
		if len(results) == 1 {
			_, err := fmt.Fprintln(w, results[0].Value)
			return err
		}
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", r.Input, r.Value); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Input, fmt.Sprintf("%d", r.Value)})
		}
		return renderTable(w, []string{"Input", label}, rows)
	}

	rows := make([]valueRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, valueRow{Input: r.Input, Value: r.Value})
	}
	return encode(w, format, rows)
}

// writeReports prints the full analysis of every input.
func writeReports(w io.Writer, format string, results []result[*pipeloop.Report]) error {
	switch format {
	case formatText:
		var sb strings.Builder
		for i, r := range results {
			if i > 0 {
				sb.WriteByte('\n')
			}
			rep := r.Value
			fmt.Fprintf(&sb, "input:       %s\n", r.Input)
			fmt.Fprintf(&sb, "size:        %dx%d\n", rep.Width, rep.Height)
			fmt.Fprintf(&sb, "start:       %v as %s\n", rep.Start, rep.StartShape)
			fmt.Fprintf(&sb, "loop length: %d\n", rep.LoopLength)
			fmt.Fprintf(&sb, "farthest:    %d\n", rep.Farthest)
			fmt.Fprintf(&sb, "enclosed:    %d\n", rep.Enclosed)
			fmt.Fprintf(&sb, "exterior:    %d\n", rep.Exterior)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case formatTable:
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rep := r.Value
			rows = append(rows, []string{
				r.Input,
				fmt.Sprintf("%dx%d", rep.Width, rep.Height),
				rep.Start.String(),
				rep.StartShape,
				fmt.Sprintf("%d", rep.LoopLength),
				fmt.Sprintf("%d", rep.Farthest),
				fmt.Sprintf("%d", rep.Enclosed),
			})
		}
		return renderTable(w, []string{"Input", "Size", "Start", "Shape", "Loop", "Farthest", "Enclosed"}, rows)
	}

	rows := make([]reportRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, reportRow{Input: r.Input, Report: r.Value})
	}
	return encode(w, format, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func encode(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
