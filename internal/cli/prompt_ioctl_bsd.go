//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import "golang.org/x/sys/unix"

// BSD kernels name the same terminal attribute ioctls TIOCGETA and TIOCSETA.
const (
	getAttrIoctl = unix.TIOCGETA
	setAttrIoctl = unix.TIOCSETA
)
