package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

func readTrimmedLine(stdin *os.File) ([]byte, error) {
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
