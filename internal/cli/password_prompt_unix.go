//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// readPasswordNoEcho disables terminal echo for the duration of one line
// read and restores the original termios state afterwards.
func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}

	fd := int(stdin.Fd())
	original, err := unix.IoctlGetTermios(fd, termiosGetRequest)
	if err != nil {
		return nil, err
	}

	silenced := *original
	silenced.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, termiosSetRequest, &silenced); err != nil {
		return nil, err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, termiosSetRequest, original)
	}()

	return readTrimmedLine(stdin)
}
