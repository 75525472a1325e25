//go:build e2e && (darwin || freebsd || netbsd || openbsd || dragonfly)

package main

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TIOCGETA
