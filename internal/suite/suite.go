// Package suite holds the dynamic array timing suite run by dynbench.
package suite

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/dynarr"
	"github.com/pavanmanishd/dynarr/timetest"
)

// Report is the outcome of a suite run.
type Report struct {
	Results []timetest.Results
	Trim    timetest.Test
	// Final is the main array's bookkeeping right after Trim.
	Final dynarr.Metrics
}

type runner struct {
	log    *zap.Logger
	report Report
}

func (r *runner) run(caption string, n int, fn timetest.Func, features timetest.Feature) error {
	r.log.Sugar().Infof("Testing dynamic array %s...", caption)
	run := timetest.NewRun(caption, n, fn, features)
	run.Logger = r.log
	res, err := run.Execute()
	if err != nil {
		return err
	}
	r.report.Results = append(r.report.Results, res)
	return nil
}

// Dynamic runs the dynamic array suite: creation, append, precate over
// half the runs, quick precate over the rest, prepending into the
// resulting deadzone, trim and, if enabled, bulk appends.
func Dynamic(cfg Config, log *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &runner{log: log}
	runs := cfg.Runs

	err := r.run("creation", runs, func(int) timetest.Test {
		t := timetest.Start("")
		a := dynarr.New[uint32]()
		t.Stop()
		a.Release()
		return t
	}, timetest.TrackTime)
	if err != nil {
		return r.report, err
	}

	arr := dynarr.New[uint32]()
	defer arr.Release()

	err = r.run("appending", runs, func(index int) timetest.Test {
		t := timetest.Start("")
		arr.Append(uint32(index))
		t.Stop()
		return t
	}, timetest.TrackTime)
	if err != nil {
		return r.report, err
	}

	precate := runs / 2
	quick := runs - precate

	err = r.run("precating", precate, func(index int) timetest.Test {
		var out uint32
		t := timetest.Time("", func() timetest.State {
			out = arr.Precate()
			return timetest.Unknown
		})
		t.State = verdict(out == uint32(index))
		return t
	}, timetest.All)
	if err != nil {
		return r.report, err
	}

	err = r.run("quick precating", quick, func(index int) timetest.Test {
		var out uint32
		t := timetest.Time("", func() timetest.State {
			out = arr.QuickPrecate()
			return timetest.Unknown
		})
		t.State = verdict(out == uint32(index+precate))
		return t
	}, timetest.All)
	if err != nil {
		return r.report, err
	}

	err = r.run("prepending into deadzone", quick, func(index int) timetest.Test {
		t := timetest.Start("")
		arr.Prepend(uint32(index))
		t.Stop()
		t.State = verdict(arr.Deadzone() == quick-index-1)
		return t
	}, timetest.All)
	if err != nil {
		return r.report, err
	}

	r.log.Sugar().Infof("Testing dynamic array trimming...")
	r.report.Trim = timetest.Discard("trim", arr.Trim)
	r.report.Final = arr.Metrics()
	if r.report.Final.Capacity != r.report.Final.Len || r.report.Final.Deadzone != 0 {
		return r.report, errors.Errorf("trim left capacity %d, deadzone %d for %d element(s)",
			r.report.Final.Capacity, r.report.Final.Deadzone, r.report.Final.Len)
	}

	if cfg.BulkChunk > 0 {
		chunk := make([]uint32, cfg.BulkChunk)
		bulk := dynarr.New[uint32]()
		defer bulk.Release()
		err = r.run("bulk appending", runs, func(index int) timetest.Test {
			for k := range chunk {
				chunk[k] = uint32(index*len(chunk) + k)
			}
			t := timetest.Start("")
			bulk.BulkAppend(chunk)
			t.Stop()
			last := bulk.Len() - 1
			t.State = verdict(last == (index+1)*len(chunk)-1 && bulk.Peek(last) == uint32(last))
			return t
		}, timetest.All)
		if err != nil {
			return r.report, err
		}
	}

	return r.report, nil
}

func verdict(ok bool) timetest.State {
	if ok {
		return timetest.Success
	}
	return timetest.Failure
}
