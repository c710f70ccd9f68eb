// Package prompt provides interactive terminal prompts for uacertctl.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// IsAborted reports whether err indicates the user aborted a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input prompts for text input, returning defaultValue if the user just
// presses Enter.
func Input(label string, defaultValue string) (string, error) {
	p := promptui.Prompt{Label: label, Default: defaultValue}
	result, err := p.Run()
	return result, wrapError(err)
}

// InputRequired prompts for text input that cannot be empty.
func InputRequired(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if input == "" {
				return fmt.Errorf("value is required")
			}
			return nil
		},
	}
	result, err := p.Run()
	return result, wrapError(err)
}

// Confirm prompts for yes/no confirmation, returning defaultYes if the
// user just presses Enter.
func Confirm(label string, defaultYes bool) (bool, error) {
	defaultStr := "y/N"
	if defaultYes {
		defaultStr = "Y/n"
	}
	p := promptui.Prompt{Label: fmt.Sprintf("%s [%s]", label, defaultStr), IsConfirm: true}

	result, err := p.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return false, ErrAborted
		}
		if err == promptui.ErrAbort {
			return false, nil
		}
		if result == "" {
			return defaultYes, nil
		}
		return false, err
	}
	return strings.EqualFold(result, "y") || strings.EqualFold(result, "yes"), nil
}

// SelectString prompts the user to choose one of items, returning the
// chosen string.
func SelectString(label string, items []string) (string, error) {
	p := promptui.Select{Label: label, Items: items, Size: 10}
	_, result, err := p.Run()
	return result, wrapError(err)
}
