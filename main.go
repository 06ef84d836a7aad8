package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"riglogger/dataformats"
	"riglogger/exportManager"
	"riglogger/sessions"
	"riglogger/storage/runstore"
	"riglogger/support"
	"riglogger/support/globals"
	"riglogger/telemetryManager"
	"riglogger/workflowManager"
)

func main() {
	port := flag.String("port", "", "serial port overriding the configuration")
	debug := flag.Bool("debug", false, "enable debug mode")
	delogs := flag.Bool("delogs", false, "delete all logs")
	flag.Parse()

	if *delogs {
		files, err := filepath.Glob(filepath.Join("log", "*"))
		if err != nil {
			fmt.Printf("*** ERROR: Error while removing logs %v ***\n", err.Error())
		}
		for _, file := range files {
			if err = os.RemoveAll(file); err != nil {
				fmt.Printf("*** ERROR: Error while removing logs %v ***\n", err.Error())
			}
		}
	}

	fmt.Printf("\nStarting riglogger %s\n\n", globals.VERSION)

	support.EnvSetUp("")
	globals.Start()
	if *port != "" {
		globals.SerialPort = *port
	}
	if *debug && !globals.DebugActive {
		globals.DebugActive = true
		fmt.Println("*** WARNING: debug mode is active ***")
	}

	if err := workflowManager.Start(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := exportManager.Start(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	archiveReady := true
	if err := runstore.Start(); err != nil {
		fmt.Printf("*** WARNING: run archive unavailable: %v ***\n", err)
		archiveReady = false
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Println("\n\n检测到 Ctrl+C，程序将退出。")
		cancel(globals.Interrupted)
	}()

	console := support.NewConsole(os.Stdin)
	console.Start()
	buffer := telemetryManager.NewSampleBuffer(globals.QueueLength)
	registry := sessions.NewRegistry()
	runner := workflowManager.NewRunner(console, buffer, registry)

	started := support.Timestamp()
	reader, err := telemetryManager.Start(ctx, cancel, buffer)
	if err != nil {
		if errors.Is(err, globals.HandshakeFailed) {
			fmt.Println("错误：等待握手信号超时。程序退出。")
		} else {
			fmt.Printf("\n错误：无法打开串口 %s。%v\n", globals.SerialPort, err)
			fmt.Println("请检查：1. 设备是否已连接。 2. 串口号是否正确。 3. 其他程序是否占用了该串口。")
		}
		_, _ = exportManager.Save(registry, globals.ExportPath)
		if archiveReady {
			runstore.Close()
		}
		fmt.Println("\n程序结束。")
		os.Exit(1)
	}

	_ = runner.Run(ctx)

	if archiveReady {
		record := dataformats.RunRecord{
			Started:  started,
			Finished: support.Timestamp(),
			State:    runner.State().String(),
			Sessions: registry.Sessions(),
			Samples:  registry.Samples(),
			Artifact: runner.Artifact(),
		}
		stored := support.RunWithPanicCheck(func() {
			if _, err := runstore.Record(record); err != nil {
				fmt.Printf("*** WARNING: run not archived: %v ***\n", err)
			}
		}, func() {})
		if !stored {
			fmt.Println("*** WARNING: run not archived ***")
		}
	}

	cancel(nil)
	if !reader.Wait(time.Duration(globals.ShutdownTime) * time.Second) {
		reader.Close()
	}
	if archiveReady {
		runstore.Close()
	}
	fmt.Println("\n程序结束。")
}
