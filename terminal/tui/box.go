package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// ParseLineType maps a border name to a LineType, LineSingle when unknown
func ParseLineType(name string) (LineType, bool) {
	switch name {
	case "", "single", "plain":
		return LineSingle, true
	case "double":
		return LineDouble, true
	case "rounded":
		return LineRounded, true
	case "heavy", "thick":
		return LineHeavy, true
	case "none", "blank":
		return LineNone, true
	}
	return LineSingle, false
}

// Box draws border around region edge
func (r Region) Box(line LineType, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]

	r.Put(0, 0, chars[boxTL], st)
	r.Put(r.W-1, 0, chars[boxTR], st)
	r.Put(0, r.H-1, chars[boxBL], st)
	r.Put(r.W-1, r.H-1, chars[boxBR], st)

	for x := 1; x < r.W-1; x++ {
		r.Put(x, 0, chars[boxH], st)
		r.Put(x, r.H-1, chars[boxH], st)
	}

	for y := 1; y < r.H-1; y++ {
		r.Put(0, y, chars[boxV], st)
		r.Put(r.W-1, y, chars[boxV], st)
	}
}

// Block draws a bordered panel with its title on the top edge, starting at column 1
// and truncated to the inner width. Returns the interior region.
func (r Region) Block(title string, titleStyle Style, line LineType, borderStyle Style) Region {
	r.Box(line, borderStyle)
	if title != "" && r.W > 2 && r.H > 0 {
		r.TextStyled(1, 0, Truncate(title, r.W-2), titleStyle)
	}
	return r.Inset(1)
}

// Title writes a truncated title on the first row and returns the rows below it
func (r Region) Title(title string, st Style) Region {
	if r.H == 0 {
		return r
	}
	r.TextStyled(0, 0, Truncate(title, r.W), st)
	return r.Sub(0, 1, r.W, r.H-1)
}
