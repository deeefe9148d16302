package autostart

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/autostart/base/log"
)

// Summary counts what happened during a run.
type Summary struct {
	Started int
	Skipped int
	Failed  int
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d started, %d skipped, %d failed", s.Started, s.Skipped, s.Failed)
}

// Runner decides and launches autostart files.
type Runner struct {
	Config  *Config
	Starter Starter
}

// Run processes files in order. A failing file never stops the run; all
// failures are returned together once every file was processed.
// Cancelling ctx stops the run before the next file.
func (r *Runner) Run(ctx context.Context, files []File) (*Summary, error) {
	var (
		summary = &Summary{}
		errs    *multierror.Error
	)

	for _, file := range files {
		if ctx.Err() != nil {
			errs = multierror.Append(errs, fmt.Errorf("stopped before %s: %w", file.Path, ctx.Err()))
			break
		}

		d := r.process(ctx, file)
		switch d.Action {
		case Launch:
			summary.Started++
		case Skip:
			summary.Skipped++
		case Fail:
			summary.Failed++
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", file.Path, d.Err))
		}
	}

	log.Infof("autostart: %s", summary)
	return summary, errs.ErrorOrNil()
}

func (r *Runner) process(ctx context.Context, file File) *Decision {
	_, tracer := log.AddTracer(ctx)
	defer tracer.Submit()

	tracer.Tracef("autostart: processing %s", file.Path)
	d := Decide(r.Config, file)
	for _, warning := range d.Warnings {
		tracer.Warningf("autostart: %s: %s", file.Path, warning)
	}

	switch d.Action {
	case Skip:
		tracer.Infof("autostart: %s: %s, skipping", file.Name, d.Reason)
		return d
	case Fail:
		tracer.Errorf("autostart: %s: %s", file.Path, d.Err)
		return d
	}

	tracer.Debugf("autostart: %s: command %s", file.Name, FormatCommand(d))
	if err := r.Starter.Start(d); err != nil {
		d.Action = Fail
		d.Err = err
		tracer.Errorf("autostart: %s: %s", file.Path, err)
	}
	return d
}
