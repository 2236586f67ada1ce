package speedtui

// These have no terminfo entry, or vary between terminfo databases, but they
// work everywhere so we hardcode them. Rows and columns in cup are 1-based
const (
	cup   = "\x1b[%d;%dH"
	clear = "\x1b[2J"

	// rgb. These usually aren't in terminfo in any way
	setrgbf = "\x1b[38;2;%d;%d;%dm"
	setrgbb = "\x1b[48;2;%d;%d;%dm"

	setfDefault = "\x1b[39m"
	setbDefault = "\x1b[49m"

	sgrReset     = "\x1b[0m"
	boldSet      = "\x1b[1m"
	italicSet    = "\x1b[3m"
	underlineSet = "\x1b[4m"
)
