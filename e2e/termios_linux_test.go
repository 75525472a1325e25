//go:build e2e && linux

package main

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TCGETS
