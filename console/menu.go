package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lpbeast/mageduel/mages"
)

var (
	ErrInvalidChoice = errors.New("choice is not a number")
	ErrNoInput       = errors.New("no choice entered")
)

const defaultWarning = "Invalid choice! Defaulting to Fire Mage."

type Menu struct {
	sc      *bufio.Scanner
	printer *Printer
}

func NewMenu(in io.Reader, p *Printer) *Menu {
	return &Menu{sc: bufio.NewScanner(in), printer: p}
}

func Prompt() string {
	parts := []string{}
	for _, v := range mages.Roster {
		parts = append(parts, fmt.Sprintf("%d. %s", v.Choice, v.Label))
	}
	return "Choose your mage: " + strings.Join(parts, " ")
}

func ParseChoice(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidChoice)
	}
	return n, nil
}

// Choose asks until it gets a number. Numbers off the menu fall back to Fire
// with a warning; running out of input is the only failure.
func (m *Menu) Choose() (mages.Element, error) {
	for {
		m.printer.Println(Plain, Prompt())
		if !m.sc.Scan() {
			if err := m.sc.Err(); err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			return 0, ErrNoInput
		}
		n, err := ParseChoice(m.sc.Text())
		if err != nil {
			m.printer.Println(Warning, "Please enter a number.")
			continue
		}
		el, ok := mages.ElementForChoice(n)
		if !ok {
			m.printer.Println(Warning, defaultWarning)
			return mages.Fire, nil
		}
		return el, nil
	}
}
