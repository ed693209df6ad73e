package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errNotTerminal = errors.New("input is not a terminal")

// PromptPassword prints label and reads one line from in with echo disabled.
// Input that is not a terminal, such as a pipe, is read as a plain line.
func PromptPassword(out io.Writer, in *os.File, label string) (string, error) {
	if in == nil {
		return "", errors.New("stdin unavailable")
	}
	fmt.Fprint(out, label)

	restore, err := disableEcho(in)
	switch {
	case err == nil:
		defer func() {
			restore()
			fmt.Fprintln(out)
		}()
	case !errors.Is(err, errNotTerminal):
		return "", err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
