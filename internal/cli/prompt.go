package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/specialistvlad/gridcal/internal/apperr"
)

const (
	labelStartYear  = "Start year"
	labelStartMonth = "Start month"
	labelColumnNum  = "Months per row"
	labelMonthNum   = "Number of months"
)

// prompter asks for values on out and reads whitespace-separated tokens
// from in. One prompter serves every prompt of a Parse call, so tokens may
// arrive on one line or several.
type prompter struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &prompter{out: out, scanner: scanner}
}

// askInt prints label and reads one integer token.
func (p *prompter) askInt(option, label string) (int, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, apperr.Wrap(apperr.Input, option, errors.Wrapf(err, "read %s", strings.ToLower(label)))
		}
		return 0, apperr.New(apperr.Input, option, "end of input while reading %s", strings.ToLower(label))
	}
	return parseInt(option, p.scanner.Text())
}
