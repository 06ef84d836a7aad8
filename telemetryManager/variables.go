package telemetryManager

const (
	// readChunk is the size of a single link read.
	readChunk = 64
	// port name prefixes selecting the non-serial telemetry sources
	tcpScheme = "tcp:"
	simScheme = "sim:"
)
