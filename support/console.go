package support

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"riglogger/support/globals"
)

// Console serialises operator input coming from a terminal.
// A single feeder goroutine owns the underlying reader and publishes
// complete lines on a channel, so prompts can wait on input and
// cancellation at the same time.
type Console struct {
	lines chan string
	in    io.Reader
	once  sync.Once
}

func NewConsole(in io.Reader) *Console {
	return &Console{
		lines: make(chan string, 1),
		in:    in,
	}
}

// Start launches the feeder goroutine. The lines channel is closed when
// the underlying reader fails or reaches EOF.
func (c *Console) Start() {
	c.once.Do(func() {
		go RunWithRecovery(func() {
			reader := bufio.NewReader(c.in)
			for {
				line, err := reader.ReadString('\n')
				if line != "" {
					c.lines <- strings.TrimSpace(line)
				}
				if err != nil {
					close(c.lines)
					return
				}
			}
		}, nil)
	})
}

// Lines exposes the raw line channel for callers that need to race input
// against other events.
func (c *Console) Lines() <-chan string {
	return c.lines
}

// ReadLine waits for the next full line of input or for the run to end.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", globals.ConsoleClosed
		}
		return line, nil
	case <-ctx.Done():
		return "", context.Cause(ctx)
	}
}

// AskPositiveFloat prompts until the operator enters a number greater than zero.
func (c *Console) AskPositiveFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		fmt.Print(prompt)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value <= 0 {
			fmt.Println("输入无效。")
			continue
		}
		return value, nil
	}
}

// WaitEnter prints the prompt and blocks until the operator presses enter.
func (c *Console) WaitEnter(ctx context.Context, prompt string) error {
	fmt.Print(prompt)
	_, err := c.ReadLine(ctx)
	return err
}
