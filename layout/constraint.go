package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPercentRange is returned by ParseConstraint for a percent above 100
var ErrPercentRange = errors.New("percent above 100")

// Direction selects the axis a split divides
type Direction uint8

const (
	Vertical   Direction = iota // children stacked top to bottom
	Horizontal                  // children placed left to right
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection accepts "vertical"/"v" and "horizontal"/"h"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown direction %q", s)
}

// Kind tags a Constraint
type Kind uint8

const (
	KindFixed Kind = iota
	KindPercent
	KindMin
)

var kindNames = [...]string{
	KindFixed:   "fixed",
	KindPercent: "percent",
	KindMin:     "min",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Constraint sizes one child of a split along the split direction
type Constraint struct {
	Kind  Kind
	Value int
}

// Fixed requests exactly n cells
func Fixed(n int) Constraint { return Constraint{Kind: KindFixed, Value: n} }

// Percent requests p percent (0-100) of the post-margin extent, truncated
func Percent(p int) Constraint { return Constraint{Kind: KindPercent, Value: p} }

// Min requests at least n cells and absorbs leftover space
func Min(n int) Constraint { return Constraint{Kind: KindMin, Value: n} }

func (c Constraint) String() string {
	return c.Kind.String() + ":" + strconv.Itoa(c.Value)
}

// ParseConstraint parses the "kind:value" form produced by String,
// e.g. "fixed:3", "percent:50", "min:0"
func ParseConstraint(s string) (Constraint, error) {
	name, val, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Constraint{}, fmt.Errorf("constraint %q: expected kind:value", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}
	if n < 0 {
		return Constraint{}, fmt.Errorf("constraint %q: negative value", s)
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed", "length":
		return Fixed(n), nil
	case "percent", "percentage":
		if n > 100 {
			return Constraint{}, fmt.Errorf("constraint %q: %w", s, ErrPercentRange)
		}
		return Percent(n), nil
	case "min":
		return Min(n), nil
	}
	return Constraint{}, fmt.Errorf("constraint %q: unknown kind %q", s, name)
}
