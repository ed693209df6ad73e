//go:build linux

package cli

import "golang.org/x/sys/unix"

// Terminal attribute ioctls used to switch echo off while a password is typed.
const (
	getAttrIoctl = unix.TCGETS
	setAttrIoctl = unix.TCSETS
)
