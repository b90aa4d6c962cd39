// Package output renders validation results for the command line.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format selects how results are rendered.
type Format int

const (
	FormatText Format = iota
	FormatTable
	FormatJSON
)

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid output format %q: must be text, table, or json", s)
	}
}

// ColorMode represents color output mode.
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// ParseColorMode parses a string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default: // ColorAuto
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer writes results to a writer.
type Printer struct {
	out       io.Writer
	format    Format
	useColors bool
	enc       *json.Encoder
	pending   []validator.Result
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer, format Format, useColors bool) *Printer {
	return &Printer{out: w, format: format, useColors: useColors, enc: json.NewEncoder(w)}
}

// Print renders all results in the printer's format.
func (p *Printer) Print(results []validator.Result) error {
	if p.format == FormatTable {
		return p.printTable(results)
	}
	for _, res := range results {
		if err := p.Emit(res); err != nil {
			return err
		}
	}
	return nil
}

// Emit renders one result as soon as it is known. Table output needs every
// row for its column widths, so it is buffered until Flush.
func (p *Printer) Emit(res validator.Result) error {
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(toRecord(res))
	case FormatTable:
		p.pending = append(p.pending, res)
		return nil
	default:
		p.PrintOne(res)
		return nil
	}
}

// Flush writes any buffered table rows.
func (p *Printer) Flush() error {
	if p.format != FormatTable || len(p.pending) == 0 {
		return nil
	}
	pending := p.pending
	p.pending = nil
	return p.printTable(pending)
}

// PrintOne renders a single result as a text line.
func (p *Printer) PrintOne(res validator.Result) {
	req := res.Request
	if res.Err == nil {
		if p.useColors {
			color.New(color.FgGreen).Fprintf(p.out, "✓ %s %s %q -> %q\n", req.Platform, req.Field, req.Value, res.Normalized)
		} else {
			fmt.Fprintf(p.out, "[OK] %s %s %q -> %q\n", req.Platform, req.Field, req.Value, res.Normalized)
		}
		return
	}

	label, reason := describe(res.Err)
	if p.useColors {
		c := color.New(color.FgRed)
		if label == statusReserved {
			c = color.New(color.FgYellow)
		}
		c.Fprintf(p.out, "✗ %s %s %q: %s\n", req.Platform, req.Field, req.Value, reason)
	} else {
		fmt.Fprintf(p.out, "[%s] %s %s %q: %s\n", strings.ToUpper(label), req.Platform, req.Field, req.Value, reason)
	}
}

func (p *Printer) printTable(results []validator.Result) error {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rec := toRecord(res)
		detail := rec.Normalized
		if rec.Reason != "" {
			detail = rec.Reason
		}
		rows = append(rows, []string{rec.Platform, rec.Field, rec.Value, rec.Status, detail})
	}

	table.Header([]string{"platform", "field", "value", "status", "result"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

const (
	statusOK       = "ok"
	statusInvalid  = "invalid"
	statusReserved = "reserved"
	statusError    = "error"
)

type record struct {
	Platform   string `json:"platform"`
	Field      string `json:"field"`
	Value      string `json:"value"`
	Status     string `json:"status"`
	Normalized string `json:"normalized,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func toRecord(res validator.Result) record {
	rec := record{
		Platform:   res.Request.Platform,
		Field:      res.Request.Field,
		Value:      res.Request.Value,
		Status:     statusOK,
		Normalized: res.Normalized,
	}
	if res.Err != nil {
		rec.Status, rec.Reason = describe(res.Err)
	}
	return rec
}

func describe(err error) (string, string) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr) && errors.Is(err, validator.ErrReserved):
		return statusReserved, verr.Reason
	case errors.As(err, &verr):
		return statusInvalid, verr.Reason
	default:
		return statusError, err.Error()
	}
}
