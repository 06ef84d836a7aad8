package workflowManager

import (
	"context"
	"fmt"

	"github.com/fpessolano/mlogger"
	"github.com/pkg/errors"

	"riglogger/exportManager"
	"riglogger/sessions"
	"riglogger/support"
	"riglogger/support/globals"
	"riglogger/telemetryManager"
)

// Start sets up the workflow logfile.
func Start() error {
	var err error
	if globals.WorkflowLog, err = mlogger.DeclareLog("riglogger_workflow", false); err != nil {
		return errors.Wrap(err, "workflowManager.Start: unable to set riglogger_workflow logfile")
	}
	if err = mlogger.SetTextLimit(globals.WorkflowLog, 60, 30, 12); err != nil {
		return errors.Wrap(err, "workflowManager.Start: logfile setup failed")
	}
	mlogger.Info(globals.WorkflowLog,
		mlogger.LoggerData{Id: "workflowManager.Start",
			Message: "service started",
			Data: []int{1}, Aggregate: true})
	return nil
}

// Runner drives the interactive sequence: calibrate once, then lock a
// pressure target and collect a session until the operator exits.
type Runner struct {
	console  *support.Console
	buffer   *telemetryManager.SampleBuffer
	registry *sessions.Registry
	state    State
	artifact string
}

func NewRunner(console *support.Console, buffer *telemetryManager.SampleBuffer,
	registry *sessions.Registry) *Runner {
	return &Runner{
		console:  console,
		buffer:   buffer,
		registry: registry,
		state:    Connecting,
	}
}

func (r *Runner) State() State {
	return r.state
}

// Artifact is the path of the saved workbook, empty when nothing was saved.
func (r *Runner) Artifact() string {
	return r.artifact
}

func (r *Runner) transition(next State) {
	r.state = next
	if globals.DebugActive {
		fmt.Printf("workflowManager.transition: %v\n", next)
	}
	mlogger.Info(globals.WorkflowLog,
		mlogger.LoggerData{Id: "workflowManager.transition",
			Message: "state " + next.String(),
			Data: []int{1}, Aggregate: true})
}

func (r *Runner) abort(reason error) {
	r.transition(Aborted)
	mlogger.Error(globals.WorkflowLog,
		mlogger.LoggerData{Id: "workflowManager.abort",
			Message: reason.Error(),
			Data: []int{1}, Aggregate: true})
}

// finish hands whatever was collected to the exporter. It runs on every
// exit path, so an aborted run still keeps its data.
func (r *Runner) finish() {
	aborted := r.state == Aborted
	r.transition(Exporting)
	artifact, err := exportManager.Save(r.registry, globals.ExportPath)
	if err == nil {
		r.artifact = artifact
	}
	if aborted {
		r.transition(Aborted)
	} else {
		r.transition(Done)
	}
}

// Run executes the whole interactive sequence against the live buffer.
func (r *Runner) Run(ctx context.Context) error {
	defer r.finish()

	r.transition(Calibrating)
	calibration, err := r.calibrate(ctx)
	if err != nil {
		r.abort(err)
		return err
	}

	for ctx.Err() == nil {
		r.transition(LockingPressure)
		target, ok, err := r.lockPressure(ctx)
		if err != nil {
			r.abort(err)
			return err
		}
		if !ok {
			return nil
		}
		r.transition(CollectingSession)
		points, err := r.collect(ctx, calibration, target)
		r.registry.Put(target, points)
		if err != nil {
			r.abort(err)
			return err
		}
	}
	cause := context.Cause(ctx)
	r.abort(cause)
	return cause
}
