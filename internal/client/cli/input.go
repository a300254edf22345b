package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine returns the next line without surrounding spaces. A final line
// without a newline still counts; io.EOF is returned only when nothing was
// left to read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText shows prompt on its own line followed by "> " and reads
// one line of answer.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetWithDefault shows current in brackets after the prompt. An empty
// answer keeps current.
func GetWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s [%s]\n> ", prompt, current); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil || line != "" {
		return line, err
	}
	return current, nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
// When nothing is typed the result is current.
func GetMultiline(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	hint := "(empty line to finish)"
	if current != "" {
		hint = fmt.Sprintf("(empty line to finish, keep %q)", firstLine(current, 30))
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", prompt, hint); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if line == "" || err != nil {
			break
		}
	}

	if len(lines) == 0 {
		return current, nil
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetPassword reads a password from the terminal without echo. The caller
// wipes the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
