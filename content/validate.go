package content

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/cvterm/layout"
)

// Validate checks the structural invariants of the deck. The first problem found
// is returned as a *ValidationError.
func Validate(d *Deck) error {
	if d == nil || len(d.Tabs) == 0 {
		return invalid("tabs", ErrNoTabs, "")
	}
	for i, t := range d.Tabs {
		path := "tabs[" + strconv.Itoa(i) + "]"
		if t.Title == "" {
			return invalid(path+".title", ErrEmptyTitle, "")
		}
		if t.Root == nil {
			return invalid(path+".root", ErrNodeKind, "missing root node")
		}
		if err := validateNode(t.Root, path+".root"); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n Node, path string) error {
	switch n := n.(type) {
	case *Split:
		path += ".split"
		if len(n.Constraints) != len(n.Children) {
			return invalid(path, ErrConstraintCount,
				fmt.Sprintf("constraints (%d) and children (%d) differ", len(n.Constraints), len(n.Children)))
		}
		if n.Margin < 0 {
			return invalid(path+".margin", ErrConstraint, "negative margin")
		}
		for i, c := range n.Constraints {
			if err := validateConstraint(c); err != nil {
				return invalid(path+".constraints["+strconv.Itoa(i)+"]", ErrConstraint, err.Error())
			}
		}
		for i, child := range n.Children {
			if err := validateNode(child, path+".children["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case *Stack:
		for i, child := range n.Children {
			if err := validateNode(child, path+".stack["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case *Block:
		return validateWidget(n.Widget, path+".block")
	case nil:
		return invalid(path, ErrNodeKind, "missing node")
	default:
		return invalid(path, ErrNodeKind, fmt.Sprintf("unknown node type %T", n))
	}
	return nil
}

func validateConstraint(c layout.Constraint) error {
	switch c.Kind {
	case layout.KindFixed, layout.KindMin:
		if c.Value < 0 {
			return fmt.Errorf("%s: negative value", c)
		}
	case layout.KindPercent:
		if c.Value < 0 || c.Value > 100 {
			return fmt.Errorf("%s: %w", c, ErrPercentRange)
		}
	default:
		return fmt.Errorf("unknown kind %s", c.Kind)
	}
	return nil
}

func validateWidget(w Widget, path string) error {
	switch w := w.(type) {
	case nil, *Paragraph:
	case *Gauge:
		if w.Percent < 0 || w.Percent > 100 {
			return invalid(path+".gauge.percent", ErrPercentRange, fmt.Sprintf("percent %d outside [0, 100]", w.Percent))
		}
	case *List:
		if w.Selected != nil && (*w.Selected < 0 || *w.Selected >= len(w.Items)) {
			return invalid(path+".list.selected", ErrSelectedRange,
				fmt.Sprintf("selected %d with %d items", *w.Selected, len(w.Items)))
		}
	case *Tabs:
		if len(w.Titles) > 0 && (w.Selected < 0 || w.Selected >= len(w.Titles)) {
			return invalid(path+".tabs.selected", ErrSelectedRange,
				fmt.Sprintf("selected %d with %d titles", w.Selected, len(w.Titles)))
		}
	default:
		return invalid(path, ErrNodeKind, fmt.Sprintf("unknown widget type %T", w))
	}
	return nil
}
