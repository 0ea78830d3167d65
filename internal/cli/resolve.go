package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/specialistvlad/gridcal/internal/apperr"
	"github.com/specialistvlad/gridcal/internal/calendar"
)

func parseInt(option, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, apperr.Wrap(apperr.ArgumentParse, option, errors.Errorf("%q is not an integer", token))
	}
	return n, nil
}

func tooMany(opt *Option) error {
	return apperr.New(apperr.TooManyArguments, opt.Name, "%s takes one value, got %d: %s",
		opt.Flag(), len(opt.Args()), strings.Join(opt.Args(), " "))
}

// resolveStart reads YEAR:MONTH from the option, or prompts for the year and
// then the month.
func resolveStart(opt *Option, p *prompter) (calendar.Month, error) {
	switch args := opt.Args(); len(args) {
	case 0:
		year, err := p.askInt(opt.Name, labelStartYear)
		if err != nil {
			return calendar.Month{}, err
		}
		month, err := p.askInt(opt.Name, labelStartMonth)
		if err != nil {
			return calendar.Month{}, err
		}
		return newStart(opt.Name, year, month)
	case 1:
		return parseStart(opt.Name, args[0])
	default:
		return calendar.Month{}, tooMany(opt)
	}
}

func parseStart(option, token string) (calendar.Month, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return calendar.Month{}, apperr.New(apperr.ArgumentParse, option, "%q is not YEAR:MONTH", token)
	}
	year, err := parseInt(option, parts[0])
	if err != nil {
		return calendar.Month{}, err
	}
	month, err := parseInt(option, parts[1])
	if err != nil {
		return calendar.Month{}, err
	}
	return newStart(option, year, month)
}

func newStart(option string, year, month int) (calendar.Month, error) {
	m, err := calendar.NewMonth(year, month)
	if err != nil {
		return calendar.Month{}, apperr.Wrap(apperr.ArgumentParse, option, err)
	}
	return m, nil
}

// resolveCount reads an integer of at least lowest from the option, or
// prompts for it with label.
func resolveCount(opt *Option, p *prompter, label string, lowest int) (int, error) {
	var n int
	var err error
	switch args := opt.Args(); len(args) {
	case 0:
		n, err = p.askInt(opt.Name, label)
	case 1:
		n, err = parseInt(opt.Name, args[0])
	default:
		return 0, tooMany(opt)
	}
	if err != nil {
		return 0, err
	}
	if n < lowest {
		return 0, apperr.New(apperr.ArgumentParse, opt.Name, "%d is less than %d", n, lowest)
	}
	return n, nil
}

// resolveChoice returns the option's single value when it is one of allowed
// (case-insensitive), or def when the flag is absent. The flag without a
// value is a MissingArgument.
func resolveChoice(opt *Option, def string, allowed ...string) (string, error) {
	args := opt.Args()
	switch {
	case len(args) > 1:
		return "", tooMany(opt)
	case len(args) == 1:
		v := strings.ToLower(args[0])
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", apperr.New(apperr.ArgumentParse, opt.Name, "%q must be one of %s", args[0], strings.Join(allowed, ", "))
	case opt.Present():
		return "", apperr.New(apperr.MissingArgument, opt.Name, "%s expects one of %s", opt.Flag(), strings.Join(allowed, ", "))
	default:
		return def, nil
	}
}

// resolveSwitch reports whether a value-less flag is present.
func resolveSwitch(opt *Option) (bool, error) {
	if len(opt.Args()) > 0 {
		return false, apperr.New(apperr.TooManyArguments, opt.Name, "%s takes no value, got %s",
			opt.Flag(), strings.Join(opt.Args(), " "))
	}
	return opt.Present(), nil
}

func resolveWeekStart(opt *Option) (time.Weekday, error) {
	v, err := resolveChoice(opt, "sunday", "sunday", "sun", "monday", "mon")
	if err != nil {
		return time.Sunday, err
	}
	if strings.HasPrefix(v, "mon") {
		return time.Monday, nil
	}
	return time.Sunday, nil
}
