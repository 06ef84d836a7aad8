package telemetryManager

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"riglogger/rigmodels"
)

// Link is a byte oriented connection to the rig. Reads follow the serial
// port convention of returning (0, nil) when the read timeout expires.
type Link interface {
	io.ReadCloser
	SetReadTimeout(timeout time.Duration) error
	ResetInputBuffer() error
}

// netLink adapts a stream socket to the Link behaviour the reader expects.
type netLink struct {
	conn    net.Conn
	timeout time.Duration
}

func (l *netLink) Read(p []byte) (int, error) {
	if l.timeout > 0 {
		if err := l.conn.SetReadDeadline(time.Now().Add(l.timeout)); err != nil {
			return 0, err
		}
	}
	n, err := l.conn.Read(p)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return n, nil
		}
	}
	return n, err
}

func (l *netLink) SetReadTimeout(timeout time.Duration) error {
	l.timeout = timeout
	return nil
}

func (l *netLink) ResetInputBuffer() error {
	old := l.timeout
	l.timeout = 10 * time.Millisecond
	chunk := make([]byte, readChunk)
	for {
		n, err := l.Read(chunk)
		if n == 0 || err != nil {
			break
		}
	}
	l.timeout = old
	return nil
}

func (l *netLink) Close() error {
	return l.conn.Close()
}

// OpenLink connects to the telemetry source named by port. Besides real
// serial devices it accepts "tcp:host:port" for networked rigs and "sim:"
// for the built-in rig simulator.
func OpenLink(ctx context.Context, port string, baud int, timeout time.Duration) (Link, error) {
	switch {
	case strings.HasPrefix(port, simScheme):
		return rigmodels.NewRig(ctx, timeout), nil
	case strings.HasPrefix(port, tcpScheme):
		conn, err := net.Dial("tcp", strings.TrimPrefix(port, tcpScheme))
		if err != nil {
			return nil, errors.Wrap(err, "telemetryManager.OpenLink: tcp connect failed")
		}
		return &netLink{conn: conn, timeout: timeout}, nil
	default:
		link, err := serial.Open(port, &serial.Mode{BaudRate: baud})
		if err != nil {
			if ports, scanErr := serial.GetPortsList(); scanErr == nil && len(ports) != 0 {
				fmt.Printf("*** INFO: available serial ports: %s ***\n", strings.Join(ports, ", "))
			}
			return nil, errors.Wrap(err, "telemetryManager.OpenLink: serial open failed")
		}
		if err = link.SetReadTimeout(timeout); err != nil {
			_ = link.Close()
			return nil, errors.Wrap(err, "telemetryManager.OpenLink: serial timeout setup failed")
		}
		return link, nil
	}
}
