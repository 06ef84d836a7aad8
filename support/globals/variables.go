package globals

import "gopkg.in/ini.v1"

// hardcoded parameters

const (
	VERSION = "1.0.0"
	// readiness token sent by the rig firmware once it has booted
	Handshake = "Arduino is Ready"
	// operator command ending the lock/collect cycle
	ExitCommand = "q"
)

// ini files
var Config *ini.File

// logFiles
var TelemetryLog, WorkflowLog, ExportManagerLog, RunStoreLog int

// Parameters configurable via ini files
//noinspection GoExportedOwnDeclaration
var DebugActive bool
var SerialPort string
var BaudRate, ReadTimeout, QueueLength, ShutdownTime int
var CalibrationWindow, SampleTimeout, DisplayPoll, DisplayJoin int
var TargetPressures []float64
var ExportPath, ArchivePath string
