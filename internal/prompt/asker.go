package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled is returned when the user interrupts a form.
var ErrCancelled = errors.New("cancelled")

// Asker asks single questions.
type Asker interface {
	Input(message, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []string, def string) (string, error)
}

// Survey asks on the terminal.
type Survey struct {
	Opts []survey.AskOpt
}

// Input asks for free text.
func (s Survey) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, s.Opts...)
	return answer, mapErr(err)
}

// Confirm asks a yes/no question.
func (s Survey) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.Opts...)
	return answer, mapErr(err)
}

// Select asks for one of options.
func (s Survey) Select(message string, options []string, def string) (string, error) {
	var answer string
	p := &survey.Select{Message: message, Options: options}
	if def != "" {
		p.Default = def
	}
	err := survey.AskOne(p, &answer, s.Opts...)
	return answer, mapErr(err)
}

func mapErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}

// form asks a sequence of questions and keeps the first error, so callers
// can write a form top to bottom and check once at the end.
type form struct {
	a   Asker
	err error
}

func (f *form) input(message, def string) string {
	if f.err != nil {
		return ""
	}
	v, err := f.a.Input(message, def)
	f.err = err
	return v
}

func (f *form) confirm(message string, def bool) bool {
	if f.err != nil {
		return false
	}
	v, err := f.a.Confirm(message, def)
	f.err = err
	return v
}

func (f *form) choose(message string, options []string, def string) string {
	if f.err != nil {
		return ""
	}
	v, err := f.a.Select(message, options, def)
	f.err = err
	return v
}
