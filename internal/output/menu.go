package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrQuit is returned when the user enters the quit token. Callers treat it
// as a clean exit, not a failure.
var ErrQuit = errors.New("user quit")

// Menu reads 1-based selections from an interactive prompt. Input is read
// line by line with no timeout; invalid input re-prompts until a valid
// choice or the quit token arrives.
type Menu struct {
	in  *bufio.Reader
	out io.Writer
}

func NewMenu(in io.Reader, out io.Writer) *Menu {
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose renders the options with 1-based indices and blocks until the user
// picks one or quits. EOF on input counts as a quit.
func (m *Menu) Choose(options []string, prompt string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("choose: no options to present")
	}

	fmt.Fprintln(m.out, prompt)
	for i, option := range options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprintln(m.out, "\nEnter the number of your choice, or 'q' to quit:")

	for {
		fmt.Fprint(m.out, "Your choice: ")

		line, err := m.in.ReadString('\n')
		choice := strings.TrimSpace(line)
		if err != nil && choice == "" {
			if errors.Is(err, io.EOF) {
				return "", ErrQuit
			}
			return "", fmt.Errorf("choose: read input: %w", err)
		}

		if strings.EqualFold(choice, "q") {
			return "", ErrQuit
		}

		index, convErr := strconv.Atoi(choice)
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a number.")
			continue
		}
		if index < 1 || index > len(options) {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}

		return options[index-1], nil
	}
}
