package globals

import (
	"fmt"
	"gopkg.in/ini.v1"
	"os"
	"strconv"
)

func Start() {

	internalConfig, err := ini.InsensitiveLoad("riglogger.ini")
	if err != nil {
		fmt.Printf("Fail to read riglogger.ini file, using defaults: %v\n", err)
		internalConfig = ini.Empty()
	}
	Config = internalConfig

	SerialPort = internalConfig.Section("serial").Key("port").MustString("COM3")
	BaudRate = internalConfig.Section("serial").Key("baud_rate").MustInt(9600)
	ReadTimeout = internalConfig.Section("serial").Key("read_timeout").MustInt(5)

	QueueLength = internalConfig.Section("buffers").Key("queue").MustInt(100)
	ShutdownTime = internalConfig.Section("buffers").Key("shutdown").MustInt(1)

	CalibrationWindow = internalConfig.Section("workflow").Key("calibration_window").MustInt(5)
	SampleTimeout = internalConfig.Section("workflow").Key("sample_timeout").MustInt(2)
	DisplayPoll = internalConfig.Section("workflow").Key("display_poll").MustInt(100)
	DisplayJoin = internalConfig.Section("workflow").Key("display_join").MustInt(500)
	TargetPressures = internalConfig.Section("workflow").Key("target_pressures").Float64s(",")
	if len(TargetPressures) == 0 {
		TargetPressures = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	}

	ExportPath = internalConfig.Section("export").Key("path").MustString(".")
	ArchivePath = internalConfig.Section("storage").Key("path").MustString("archive")

	DebugActive = internalConfig.Section("debug").Key("enabled").MustBool(false)

	// environment overrides, loaded from .env when present
	if port := os.Getenv("RIG_PORT"); port != "" {
		SerialPort = port
	}
	if baud := os.Getenv("RIG_BAUD"); baud != "" {
		if v, e := strconv.Atoi(baud); e == nil {
			BaudRate = v
		}
	}
	if debug := os.Getenv("RIG_DEBUG"); debug != "" {
		DebugActive = debug == "1" || debug == "true"
	}

	if DebugActive {
		fmt.Printf("*** WARNING: debug mode is active ***\n")
	}
}
