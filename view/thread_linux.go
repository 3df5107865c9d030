// SPDX-License-Identifier: Unlicense OR MIT

package view

import "golang.org/x/sys/unix"

func threadID() int {
	return unix.Gettid()
}
