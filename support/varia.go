package support

import (
	"fmt"
	"time"
)

func Timestamp() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// Overwrite redraws a single status line in place.
func Overwrite(format string, a ...interface{}) {
	fmt.Printf("\r"+format, a...)
}
