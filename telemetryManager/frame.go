package telemetryManager

import (
	"strconv"
	"strings"

	"riglogger/dataformats"
)

// DecodeFrame parses a raw telemetry line "force,distance,pressure" into a
// sample. It reports false on any malformed line so the reader can skip it.
func DecodeFrame(line string) (dataformats.Sample, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return dataformats.Sample{}, false
	}
	force, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return dataformats.Sample{}, false
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return dataformats.Sample{}, false
	}
	pressure, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return dataformats.Sample{}, false
	}
	return dataformats.Sample{Force: force, Distance: distance, Pressure: pressure}, true
}
