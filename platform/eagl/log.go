// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && ios

package eagl

/*
@import Foundation;

static void eagl_nslog(char *str) {
	NSLog(@"%@", @(str));
}
*/
import "C"

import (
	"bufio"
	"io"
	"unsafe"
)

// NewLogWriter returns a writer forwarding each line to NSLog, for use
// as the output of a slog handler:
//
//	view.SetLogger(slog.New(slog.NewTextHandler(eagl.NewLogWriter(), nil)))
func NewLogWriter() io.Writer {
	r, w := io.Pipe()
	go func() {
		// 1024 is an arbitrary truncation limit, taken from Android's
		// log buffer size.
		lineBuf := bufio.NewReaderSize(r, 1024)
		// The buffer to pass to C, including the terminating '\0'.
		buf := make([]byte, lineBuf.Size()+1)
		cbuf := (*C.char)(unsafe.Pointer(&buf[0]))
		for {
			line, _, err := lineBuf.ReadLine()
			if err != nil {
				break
			}
			copy(buf, line)
			buf[len(line)] = 0
			C.eagl_nslog(cbuf)
		}
	}()
	return w
}
