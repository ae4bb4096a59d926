package timetest

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	hdrhistogram "github.com/elastic/go-hdrhistogram"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Feature enables parts of a Run.
type Feature uint8

const (
	// CheckResults counts test states and logs failures.
	CheckResults Feature = 1 << iota
	// TrackTime aggregates the time taken by each test.
	TrackTime

	All = CheckResults | TrackTime
)

// ErrUnknownState is returned when a checked test did not report a state.
var ErrUnknownState = errors.New("test returned invalid state of unknown")

const (
	histMin     = 1
	histMax     = int64(time.Minute)
	histSigFigs = 3
)

// Func runs the test with the given index.
type Func func(index int) Test

// Run is a template for N executions of Func.
type Run struct {
	Caption  string
	N        int
	Func     Func
	Features Feature

	// Logger receives failed tests. Nil discards them.
	Logger *zap.Logger
}

// NewRun creates a Run.
func NewRun(caption string, n int, fn Func, features Feature) *Run {
	return &Run{Caption: caption, N: n, Func: fn, Features: features}
}

// Results aggregates the tests of one Run.
type Results struct {
	Caption string
	N       int

	Success int
	Failure int
	Skipped int

	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	P50   time.Duration
	P99   time.Duration

	CheckResults bool
	TrackTime    bool
}

// Execute runs the tests. It stops at the first test that reports
// Unknown while CheckResults is enabled.
func (r *Run) Execute() (Results, error) {
	res := Results{
		Caption:      r.Caption,
		N:            r.N,
		CheckResults: r.Features&CheckResults != 0,
		TrackTime:    r.Features&TrackTime != 0,
		Min:          time.Duration(math.MaxInt64),
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	hist := hdrhistogram.New(histMin, histMax, histSigFigs)

	for t := 0; t < r.N; t++ {
		test := r.Func(t)

		if res.TrackTime {
			res.Max = max(res.Max, test.Taken)
			res.Min = min(res.Min, test.Taken)
			res.Total += test.Taken
			// Out-of-range values are clamped; min/max stay exact.
			_ = hist.RecordValue(min(max(int64(test.Taken), histMin), histMax))
		}

		if !res.CheckResults {
			continue
		}
		switch test.State {
		case Success:
			res.Success++
		case Failure:
			res.Failure++
			logger.Error("test failed", zap.String("caption", r.Caption), zap.Int("run", t))
		case Skipped:
			res.Skipped++
		default:
			return res, errors.Wrapf(ErrUnknownState, "%s: test #%d", r.Caption, t)
		}
	}

	if res.Min == time.Duration(math.MaxInt64) {
		res.Min = 0
	}
	res.Avg = res.Total / time.Duration(max(r.N, 1))
	if hist.TotalCount() > 0 {
		res.P50 = time.Duration(hist.ValueAtQuantile(50))
		res.P99 = time.Duration(hist.ValueAtQuantile(99))
	}
	return res, nil
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// Print writes the results in the tabbed TIME/CHECK report format.
func (res Results) Print(w io.Writer) error {
	if res.TrackTime {
		caption := res.Caption
		if _, err := fmt.Fprintf(w,
			"%s:\n"+
				"\tTIME:\n"+
				"\t\tMIN:\t%.0f\tmicros\n"+
				"\t\tMAX:\t%.0f\tmicros\n"+
				"\t\tAVG:\t%.2f\tmicros\n"+
				"\t\tP50:\t%.0f\tmicros\n"+
				"\t\tP99:\t%.0f\tmicros\n"+
				"\t\tTOTAL:\t%.0f\tmicros in %s runs\n",
			caption,
			micros(res.Min), micros(res.Max), micros(res.Avg),
			micros(res.P50), micros(res.P99),
			micros(res.Total), humanize.Comma(int64(res.N)),
		); err != nil {
			return err
		}
	}
	if !res.CheckResults {
		return nil
	}
	if !res.TrackTime {
		if _, err := fmt.Fprintf(w, "%s:\n", res.Caption); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		"\tCHECK:\n"+
			"\t\tSUCCESS: %s\n"+
			"\t\tFAILURE: %s\n"+
			"\t\tSKIPPED: %s\n",
		humanize.Comma(int64(res.Success)),
		humanize.Comma(int64(res.Failure)),
		humanize.Comma(int64(res.Skipped)),
	)
	return err
}
