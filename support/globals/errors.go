package globals

import "errors"

var (
	KeyInvalid       = errors.New("invalid key")
	HandshakeFailed  = errors.New("handshake timeout")
	LinkFault        = errors.New("telemetry link fault")
	CalibrationEmpty = errors.New("no calibration samples")
	ConsoleClosed    = errors.New("operator console closed")
	Interrupted      = errors.New("interrupted by operator")
)
