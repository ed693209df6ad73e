//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func disableEcho(file *os.File) (func(), error) {
	fd := int(file.Fd())
	termios, err := unix.IoctlGetTermios(fd, getAttrIoctl)
	if err != nil {
		return nil, errNotTerminal
	}
	original := *termios
	silent := original
	silent.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, setAttrIoctl, &silent); err != nil {
		return nil, fmt.Errorf("disable echo: %w", err)
	}
	return func() {
		_ = unix.IoctlSetTermios(fd, setAttrIoctl, &original)
	}, nil
}
