package intervalmap

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrInvalidAssignment = errors.New("invalid assignment string")

	assignPattern = regexp.MustCompile(`^(-?[0-9]+):(-?[0-9]+)=(\S+)$`)
)

// Assignment is a single assign(Begin, End, Value) call.
type Assignment struct {
	Begin, End int
	Value      string
}

func (a Assignment) String() string {
	return fmt.Sprintf("%d:%d=%s", a.Begin, a.End, a.Value)
}

// ParseAssignment parses a string of the form BEGIN:END=VALUE.
func ParseAssignment(str string) (Assignment, error) {
	parts := assignPattern.FindStringSubmatch(str)
	if len(parts) != 4 {
		return Assignment{}, ErrInvalidAssignment
	}

	begin, err := strconv.Atoi(parts[1])
	if err != nil {
		return Assignment{}, ErrInvalidAssignment
	}
	end, err := strconv.Atoi(parts[2])
	if err != nil {
		return Assignment{}, ErrInvalidAssignment
	}
	return Assignment{Begin: begin, End: end, Value: parts[3]}, nil
}

func ParseAssignments(strs []string) ([]Assignment, error) {
	out := make([]Assignment, 0, len(strs))
	for _, s := range strs {
		a, err := ParseAssignment(s)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out = append(out, a)
	}
	return out, nil
}
