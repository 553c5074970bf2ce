package constants

// UI Layout Constants
const (
	// HeaderHeight is the fixed height of the tab strip panel, border included
	HeaderHeight = 3

	// TabWidth is the number of spaces a tab character expands to in paragraphs
	TabWidth = 4

	// TabSeparator is drawn between tab titles
	TabSeparator = " │ "
)
