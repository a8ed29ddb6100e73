package game

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Layout is the static part of a game: walls and the starting placement of everything else.
type Layout struct {
	Name        string
	Width       int
	Height      int
	walls       []bool // Indexed by y*Width+x
	Food        []Position
	Capsules    []Position
	PacmanStart Position
	GhostStarts []Position
}

// ParseLayout reads a layout in the classic character format:
// '%' wall, '.' food, 'o' capsule, 'P' Pacman, 'G' ghost, anything else empty.
func ParseLayout(name, text string) (*Layout, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil, errors.Errorf("layout %q is empty", name)
	}

	width := 0
	for y, line := range lines {
		if i := strings.IndexFunc(line, func(r rune) bool { return r >= utf8.RuneSelf }); i >= 0 {
			return nil, errors.Errorf("layout %q has a non-ASCII character at row %d, byte %d", name, y, i)
		}
		width = max(width, len(strings.TrimRight(line, "\r")))
	}

	l := &Layout{
		Name:   name,
		Width:  width,
		Height: len(lines),
		walls:  make([]bool, width*len(lines)),
	}

	pacmen := 0
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				l.walls[y*width+x] = true
			case '.':
				l.Food = append(l.Food, p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.PacmanStart = p
				pacmen++
			case 'G':
				l.GhostStarts = append(l.GhostStarts, p)
			}
		}
	}
	if pacmen != 1 {
		return nil, errors.Errorf("layout %q must have exactly one Pacman, found %d", name, pacmen)
	}

	return l, nil
}

// LoadLayout reads a layout from a file, named after the file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout %s", path)
	}
	return ParseLayout(path, string(data))
}

// LookupLayout returns a built-in layout by name, or loads it from disk if name is a file.
func LookupLayout(name string) (*Layout, error) {
	if text, ok := layouts[name]; ok {
		return ParseLayout(name, text)
	}
	if _, err := os.Stat(name); err == nil {
		return LoadLayout(name)
	}
	return nil, errors.Wrapf(ErrUnknownLayout, "%q", name)
}

// IsWall reports whether p is a wall; anything off the grid counts as a wall.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[p.Y*l.Width+p.X]
}

// NumGhosts returns the number of ghost starts in the layout.
func (l *Layout) NumGhosts() int {
	return len(l.GhostStarts)
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}
