package telemetryManager

import (
	"context"
	"fmt"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/pkg/errors"

	"riglogger/support/globals"
)

// Start opens the telemetry link, performs the handshake and launches the
// background reader. On success the returned reader owns the link until the
// run context ends.
func Start(ctx context.Context, cancel context.CancelCauseFunc, buffer *SampleBuffer) (*Reader, error) {
	var err error

	if globals.TelemetryLog, err = mlogger.DeclareLog("riglogger_telemetry", false); err != nil {
		return nil, errors.Wrap(err, "telemetryManager.Start: unable to set riglogger_telemetry logfile")
	}
	if err = mlogger.SetTextLimit(globals.TelemetryLog, 80, 30, 12); err != nil {
		return nil, errors.Wrap(err, "telemetryManager.Start: logfile setup failed")
	}

	timeout := time.Duration(globals.ReadTimeout) * time.Second
	link, err := OpenLink(ctx, globals.SerialPort, globals.BaudRate, timeout)
	if err != nil {
		return nil, err
	}
	fmt.Printf("成功连接到串口 %s。\n", globals.SerialPort)
	mlogger.Info(globals.TelemetryLog,
		mlogger.LoggerData{Id: "telemetryManager.Start",
			Message: "link open on " + globals.SerialPort,
			Data: []int{1}, Aggregate: true})

	reader := &Reader{
		link:   link,
		buffer: buffer,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	fmt.Println("正在等待Arduino的“准备就绪”信号...")
	if err = reader.handshake(); err != nil {
		_ = link.Close()
		mlogger.Error(globals.TelemetryLog,
			mlogger.LoggerData{Id: "telemetryManager.Start",
				Message: "handshake failed",
				Data: []int{1}, Aggregate: true})
		return nil, err
	}
	fmt.Println("握手成功！Arduino已准备就绪。")
	_ = link.ResetInputBuffer()

	go reader.run(ctx)
	fmt.Println("后台数据接收线程已启动。")
	mlogger.Info(globals.TelemetryLog,
		mlogger.LoggerData{Id: "telemetryManager.Start",
			Message: "service started",
			Data: []int{1}, Aggregate: true})
	return reader, nil
}
