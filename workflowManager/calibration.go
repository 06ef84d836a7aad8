package workflowManager

import (
	"context"
	"fmt"
	"time"

	"github.com/fpessolano/mlogger"
	"gonum.org/v1/gonum/stat"

	"riglogger/dataformats"
	"riglogger/support"
	"riglogger/support/globals"
)

// calibrate asks for the reference length and averages the distance channel
// over a fixed window to derive the sensor offset.
func (r *Runner) calibrate(ctx context.Context) (dataformats.CalibrationResult, error) {
	fmt.Println("\n--- 步骤 1: 长度校准 ---")
	reference, err := r.console.AskPositiveFloat(ctx,
		"请输入您测量的物体真实初始长度 (mm)，然后按 [Enter]: ")
	if err != nil {
		return dataformats.CalibrationResult{}, err
	}
	prompt := fmt.Sprintf("\n已设置真实初始长度为 %.2f mm。\n"+
		"请将物体放置在该初始位置，然后按 [Enter] 键开始测量传感器读数...", reference)
	if err = r.console.WaitEnter(ctx, prompt); err != nil {
		return dataformats.CalibrationResult{}, err
	}
	r.buffer.Flush()

	window := time.Duration(globals.CalibrationWindow) * time.Second
	timeout := time.Duration(globals.SampleTimeout) * time.Second
	var distances []float64
	fmt.Println("正在测量传感器读数...")
	start := time.Now()
	for time.Since(start) < window {
		sample, ok := r.buffer.PopWait(ctx, timeout)
		if !ok {
			if ctx.Err() != nil {
				return dataformats.CalibrationResult{}, context.Cause(ctx)
			}
			fmt.Println("\n警告：校准期间未收到数据。")
			break
		}
		distances = append(distances, sample.Distance)
		left := window - time.Since(start)
		support.Overwrite("采集中... 剩余 %.1f 秒", left.Seconds())
	}
	if len(distances) == 0 {
		fmt.Println("\n错误：校准失败，未收集到任何数据。")
		return dataformats.CalibrationResult{}, globals.CalibrationEmpty
	}

	mean := stat.Mean(distances, nil)
	result := dataformats.CalibrationResult{
		Reference: reference,
		Offset:    reference - mean,
	}
	fmt.Printf("\n\n校准完成！传感器在初始位置的平均读数为: %.2f mm\n", mean)
	fmt.Printf("计算出的校准偏移量为: %.2f mm\n", result.Offset)
	mlogger.Info(globals.WorkflowLog,
		mlogger.LoggerData{Id: "workflowManager.calibrate",
			Message: fmt.Sprintf("offset %.2f", result.Offset),
			Data: []int{len(distances)}, Aggregate: true})
	return result, nil
}
