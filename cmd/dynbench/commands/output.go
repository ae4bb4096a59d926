package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/dynarr/internal/suite"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))

type resultSummary struct {
	Caption string `json:"caption" yaml:"caption"`
	Runs    int    `json:"runs" yaml:"runs"`
	Min     string `json:"min,omitempty" yaml:"min,omitempty"`
	Max     string `json:"max,omitempty" yaml:"max,omitempty"`
	Avg     string `json:"avg,omitempty" yaml:"avg,omitempty"`
	P50     string `json:"p50,omitempty" yaml:"p50,omitempty"`
	P99     string `json:"p99,omitempty" yaml:"p99,omitempty"`
	Total   string `json:"total,omitempty" yaml:"total,omitempty"`
	Success *int   `json:"success,omitempty" yaml:"success,omitempty"`
	Failure *int   `json:"failure,omitempty" yaml:"failure,omitempty"`
	Skipped *int   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

type reportSummary struct {
	Results  []resultSummary `json:"results" yaml:"results"`
	Trim     string          `json:"trim" yaml:"trim"`
	Len      int             `json:"len" yaml:"len"`
	Capacity int             `json:"capacity" yaml:"capacity"`
	Bytes    int             `json:"bytes" yaml:"bytes"`
}

func summarize(report suite.Report) reportSummary {
	out := reportSummary{
		Trim:     report.Trim.Taken.String(),
		Len:      report.Final.Len,
		Capacity: report.Final.Capacity,
		Bytes:    report.Final.SizeInBytes,
	}
	for _, res := range report.Results {
		s := resultSummary{Caption: res.Caption, Runs: res.N}
		if res.TrackTime {
			s.Min, s.Max, s.Avg = res.Min.String(), res.Max.String(), res.Avg.String()
			s.P50, s.P99, s.Total = res.P50.String(), res.P99.String(), res.Total.String()
		}
		if res.CheckResults {
			s.Success, s.Failure, s.Skipped = &res.Success, &res.Failure, &res.Skipped
		}
		out.Results = append(out.Results, s)
	}
	return out
}

func writeReport(w io.Writer, cfg suite.Config, report suite.Report) error {
	switch cfg.Output {
	case suite.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summarize(report))
	case suite.OutputYAML:
		data, err := yaml.Marshal(summarize(report))
		if err != nil {
			return errors.Wrap(err, "failed to format output")
		}
		_, err = w.Write(data)
		return err
	default:
		return writeText(w, cfg.Color, report)
	}
}

func writeText(w io.Writer, color bool, report suite.Report) error {
	for _, res := range report.Results {
		if color {
			res.Caption = headerStyle.Render(res.Caption)
		}
		if err := res.Print(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Trim time:\t%d micros\nAfter trim:\t%s element(s) in %s\n",
		report.Trim.Taken/time.Microsecond,
		humanize.Comma(int64(report.Final.Len)),
		humanize.IBytes(uint64(report.Final.SizeInBytes)),
	)
	return err
}
