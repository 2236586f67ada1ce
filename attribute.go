package speedtui

// AttributeMask represents a bitmask of boolean attributes to style a cell
type AttributeMask uint8

const (
	AttrBold AttributeMask = 1 << iota
	AttrUnderline
	AttrItalic
)
