package workflowManager

import (
	"context"
	"fmt"
	"time"

	"github.com/fpessolano/mlogger"

	"riglogger/dataformats"
	"riglogger/support"
	"riglogger/support/globals"
)

// collect streams calibrated measurements for one locked target until the
// operator presses enter. Partial data is returned even when the run fails.
func (r *Runner) collect(ctx context.Context, calibration dataformats.CalibrationResult,
	target float64) ([]dataformats.Measurement, error) {
	fmt.Println("\n--- 步骤 3: 数据采集 ---")
	fmt.Println(">>> 数据采集中... 按 [Enter] 结束当前测量。")

	stepCtx, stopStep := context.WithCancel(ctx)
	defer stopStep()
	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		select {
		case <-r.console.Lines():
			stopStep()
		case <-stepCtx.Done():
		}
	}()

	timeout := time.Duration(globals.SampleTimeout) * time.Second
	var points []dataformats.Measurement
	for stepCtx.Err() == nil {
		sample, ok := r.buffer.PopWait(stepCtx, timeout)
		if !ok {
			continue
		}
		shrinkage := calibration.Shrinkage(sample.Distance)
		support.Overwrite("力: %6.2f N  |  收缩率: %6.2f %%  |  实时压力: %5.3f MPa   ",
			sample.Force, shrinkage, sample.Pressure)
		points = append(points, dataformats.Measurement{Force: sample.Force, Shrinkage: shrinkage})
	}
	fmt.Println("\n--- 采集结束 ---")
	<-listenerDone
	mlogger.Info(globals.WorkflowLog,
		mlogger.LoggerData{Id: "workflowManager.collect",
			Message: "session closed for " + globals.FormatPressure(target) + " MPa",
			Data: []int{len(points)}, Aggregate: true})
	if ctx.Err() != nil {
		return points, context.Cause(ctx)
	}
	return points, nil
}
