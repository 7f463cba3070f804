package main

import (
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

// Language is the --language flag. Unless it is set, the configured default language is used.
type Language struct {
	direction lexicon.Direction
	set       bool
}

var _ pflag.Value = (*Language)(nil)

func (l *Language) Set(val string) error {
	direction, err := lexicon.ParseDirection(val)
	if err != nil {
		return err
	}
	l.direction = direction
	l.set = true
	return nil
}

func (l Language) String() string {
	return l.direction.Name()
}

func (l *Language) Type() string {
	return "language"
}

func allLanguageNames() []string {
	names := make([]string, 0, len(lexicon.AllDirections))
	for _, direction := range lexicon.AllDirections {
		names = append(names, direction.Name())
	}
	return names
}
