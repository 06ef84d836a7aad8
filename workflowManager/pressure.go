package workflowManager

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fpessolano/mlogger"

	"riglogger/support"
	"riglogger/support/globals"
)

// lockPressure asks for the next target and shows live pressure readings
// while the operator converges on it. ok is false when the operator exits.
// Off-list targets are accepted with a warning.
func (r *Runner) lockPressure(ctx context.Context) (target float64, ok bool, err error) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("--- 步骤 2: 压力目标设置 ---")

	for {
		fmt.Printf("请输入本次要测量的目标压力档位 (推荐: %s),\n或输入 '%s' 退出并保存: ",
			globals.PressureList(), globals.ExitCommand)
		line, err := r.console.ReadLine(ctx)
		if err != nil {
			return 0, false, err
		}
		if strings.ToLower(line) == globals.ExitCommand {
			return 0, false, nil
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println("输入无效，请输入一个数字。")
			continue
		}
		if !globals.SuggestedPressure(value) {
			fmt.Printf("警告：输入值 %s 不在推荐列表中，但仍将继续。\n", globals.FormatPressure(value))
		}
		target = value
		break
	}

	fmt.Printf("\n已设定目标压力为 %s MPa。\n", globals.FormatPressure(target))
	r.buffer.Flush()

	stopDisplay := make(chan struct{})
	displayDone := make(chan struct{})
	go func() {
		defer close(displayDone)
		poll := time.NewTicker(time.Duration(globals.DisplayPoll) * time.Millisecond)
		defer poll.Stop()
		for {
			select {
			case <-stopDisplay:
				return
			case <-ctx.Done():
				return
			case <-poll.C:
				if sample, seen := r.buffer.Latest(); seen {
					support.Overwrite("请调节气压至 %s MPa 附近... 当前压力: %.3f MPa",
						globals.FormatPressure(target), sample.Pressure)
				}
			}
		}
	}()

	err = r.console.WaitEnter(ctx, "\n按 [Enter] 键确认并开始数据采集...")
	close(stopDisplay)
	select {
	case <-displayDone:
	case <-time.After(time.Duration(globals.DisplayJoin) * time.Millisecond):
		mlogger.Warning(globals.WorkflowLog,
			mlogger.LoggerData{Id: "workflowManager.lockPressure",
				Message: "display helper failed to stop in time",
				Data: []int{1}, Aggregate: true})
	}
	fmt.Println()
	if err != nil {
		return 0, false, err
	}
	r.buffer.Flush()
	return target, true, nil
}
