package model

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"

	DefaultViewWidth  = 60
	DefaultViewHeight = 30
)

// TerminalRenderer draws the area around a World's living cells. The view
// starts one cell above and left of the bounding box and is clipped to
// Width x Height positions; zero means the default size.
type TerminalRenderer struct {
	Out    io.Writer
	Width  int
	Height int
}

// Display renders the top-left corner of w's bounding box, with a one cell
// margin, clipped to the view size
func (r *TerminalRenderer) Display(w *World) {
	out := r.writer()

	b, ok := w.BoundingBox()
	if !ok {
		fmt.Fprintln(out)
		return
	}

	var (
		startX, cols = viewAxis(b.MinX, b.MaxX, orDefault(r.Width, DefaultViewWidth))
		startY, rows = viewAxis(b.MinY, b.MaxY, orDefault(r.Height, DefaultViewHeight))
	)

	alive := make(map[Cell]struct{}, len(w.cells))
	for _, c := range w.cells {
		alive[c] = struct{}{}
	}

	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if _, ok := alive[NewCell(startX+i, startY+j)]; ok {
				fmt.Fprint(out, gridPosBlock)
			} else {
				fmt.Fprint(out, gridPosEmpty)
			}
		}
		fmt.Fprintln(out)
	}
}

// viewAxis returns the first coordinate and the number of positions to draw
// along one axis. The margin is dropped at the ends of the int range, so
// start+n-1 never overflows.
func viewAxis(lo, hi, limit int) (start, n int) {
	start, end := lo, hi
	if lo > math.MinInt {
		start = lo - 1
	}
	if hi < math.MaxInt {
		end = hi + 1
	}

	if d := uint(end) - uint(start); d < uint(limit) {
		return start, int(d) + 1
	}
	return start, limit
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.writer()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) writer() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
