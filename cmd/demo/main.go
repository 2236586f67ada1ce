package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"github.com/tteejj/speedtui"
)

const (
	altScreenSet   = "\x1b[?1049h"
	altScreenReset = "\x1b[?1049l"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
)

// A bouncing true-color box, redrawn at 60 FPS through the delta renderer.
// Press any key to exit
type model struct {
	col, row   int
	colDir     int
	rowDir     int
	cols, rows int
	hue        int
	hueDir     int
}

func (m *model) step(width int, height int) {
	if m.col+m.cols >= width {
		m.colDir = -1
	}
	if m.col <= 0 {
		m.colDir = 1
	}
	if m.row+m.rows >= height {
		m.rowDir = -1
	}
	if m.row <= 0 {
		m.rowDir = 1
	}
	if m.hue >= 255 {
		m.hueDir = -1
	}
	if m.hue <= 0 {
		m.hueDir = 1
	}
	m.col += m.colDir
	m.row += m.rowDir
	m.hue += m.hueDir
}

func (m *model) draw(buf *speedtui.Buffer) {
	buf.Clear()
	buf.Fill(m.col, m.row, m.cols, m.rows, speedtui.Cell{
		Character:  ' ',
		Background: speedtui.PackRGB(m.hue, 64, 255-m.hue),
	})
	speedtui.Print(buf, m.col+1, m.row+1, speedtui.Segment{
		Text:       "press any key",
		Foreground: speedtui.PackRGB(255, 255, 255),
		Background: speedtui.PackRGB(m.hue, 64, 255-m.hue),
		Attributes: speedtui.AttrBold,
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := os.Create("demo.log")
	if err != nil {
		return err
	}
	defer logFile.Close()
	handler := tint.NewHandler(logFile, &tint.Options{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
	})

	width, height, err := speedtui.TerminalSize(os.Stdout)
	if err != nil {
		return err
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer term.Restore(int(os.Stdin.Fd()), state)
	os.Stdout.WriteString(altScreenSet + cursorHide)
	defer os.Stdout.WriteString(cursorShow + altScreenReset)

	renderer, err := speedtui.NewRenderer(os.Stdout, width, height, speedtui.Options{
		LogHandler: handler,
	})
	if err != nil {
		return err
	}
	defer renderer.Close()

	quit := make(chan struct{})
	go func() {
		b := make([]byte, 1)
		os.Stdin.Read(b)
		close(quit)
	}()

	m := &model{
		colDir: 1,
		rowDir: 1,
		hueDir: 1,
		cols:   16,
		rows:   4,
	}
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			m.step(renderer.Size())
			m.draw(renderer.Buffer())
			if err := renderer.Render(); err != nil {
				return err
			}
		}
	}
}
