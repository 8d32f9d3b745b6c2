package canvasview

import (
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

type cell struct {
	set   bool
	color string
}

// Surface is the shared drawing state behind the canvas component. The
// relay consumer writes to it from the dispatcher goroutine while the view
// reads it on redraw ticks, so all access goes through the mutex.
type Surface struct {
	mutex  sync.Mutex
	width  int
	height int
	cells  [][]cell

	penX int
	penY int
}

func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
	}
	s.reset()
	return s
}

func (s *Surface) reset() {
	s.cells = make([][]cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]cell, s.width)
	}
	s.penX = 0
	s.penY = 0
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) MoveTo(x, y float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.penX = s.clampX(int(x))
	s.penY = s.clampY(int(y))
	s.cells[s.penY][s.penX] = cell{set: true, color: ""}
}

// LineTo draws a straight segment from the pen to the target point.
// Terminal cells have a single size, so lineWidth only travels on the wire
// and is not rendered here.
func (s *Surface) LineTo(x, y float64, color string, lineWidth float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	targetX := s.clampX(int(x))
	targetY := s.clampY(int(y))
	s.plotLine(s.penX, s.penY, targetX, targetY, color)
	s.penX = targetX
	s.penY = targetY
}

func (s *Surface) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reset()
}

func (s *Surface) Render() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile := termenv.ColorProfile()
	var builder strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.cells[y][x]
			if !c.set {
				builder.WriteByte(' ')
				continue
			}
			if c.color == "" {
				builder.WriteString("█")
				continue
			}
			builder.WriteString(termenv.String("█").Foreground(profile.Color(c.color)).String())
		}
		if y < s.height-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

func (s *Surface) clampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= s.width {
		return s.width - 1
	}
	return x
}

func (s *Surface) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= s.height {
		return s.height - 1
	}
	return y
}

// Bresenham.
func (s *Surface) plotLine(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.cells[y0][x0] = cell{set: true, color: color}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
