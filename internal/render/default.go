package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	out          io.Writer
	fd           int
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

// NewRenderer draws to the given terminal file.
func NewRenderer(f *os.File) *DefaultRenderer {
	return &DefaultRenderer{out: f, fd: int(f.Fd())}
}

// NewBufferRenderer draws to w without touching any terminal state.
func NewBufferRenderer(w io.Writer) *DefaultRenderer {
	return &DefaultRenderer{out: w, fd: -1}
}

func (r *DefaultRenderer) Init() error {
	if r.fd >= 0 {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return fmt.Errorf("unable to make terminal raw: %w", err)
		}
		r.restoreState = state
	}

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[2J")     // Clear the screen
	return r.Flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	if err := r.Flush(); nil != err {
		return err
	}
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

// Size falls back to 80x24 when the output is not a terminal.
func (r *DefaultRenderer) Size() (int, int) {
	if r.fd >= 0 {
		if columns, rows, err := term.GetSize(r.fd); nil == err {
			return columns, rows
		}
	}
	return 80, 24
}

// AddDecoration replaces any decoration already shown at the same cell.
func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	for _, d := range r.decorations {
		if d.X == col && d.Y == row {
			d.Content = content
			d.Frames = frames
			r.Fill(row, col, content)
			return
		}
	}
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, strings.Repeat(" ", visibleWidth(d.Content)))
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per period with the time since the previous
// frame, until render returns false.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(elapsed time.Duration) bool) {
	last := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)

		cont := render(now.Sub(last))
		last = now

		r.tickDecorations()
		if err := r.Flush(); nil != err || !cont {
			return
		}

		time.Sleep(time.Until(deadline))
	}
}

// moveTo writes the cursor position, rows and columns start at 1.
func (r *DefaultRenderer) moveTo(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(int(row)))
	r.buffer.WriteByte(';')
	r.buffer.WriteString(strconv.Itoa(int(column)))
	r.buffer.WriteByte('H')
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.moveTo(row, column)
	fmt.Fprintf(&r.buffer, "\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, message)
}

func (r *DefaultRenderer) Flush() error {
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}

// visibleWidth counts runes outside of escape sequences.
func visibleWidth(s string) int {
	n := 0
	escape := false
	for _, c := range s {
		switch {
		case escape:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				escape = false
			}
		case c == '\033':
			escape = true
		default:
			n++
		}
	}
	return n
}
