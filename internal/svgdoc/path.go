package svgdoc

import (
	"strings"

	"github.com/san-kum/refsheet/internal/numfmt"
)

type segment struct {
	cmd    byte
	pt     Point
	rx, ry float64
	large  bool
	sweep  bool
}

// PathData accumulates SVG path commands.
type PathData struct {
	segs []segment
}

func (p *PathData) MoveTo(pt Point) *PathData {
	p.segs = append(p.segs, segment{cmd: 'M', pt: pt})
	return p
}

func (p *PathData) LineTo(pt Point) *PathData {
	p.segs = append(p.segs, segment{cmd: 'L', pt: pt})
	return p
}

// ArcTo appends an elliptical arc without axis rotation.
func (p *PathData) ArcTo(rx, ry float64, large, sweep bool, pt Point) *PathData {
	p.segs = append(p.segs, segment{cmd: 'A', pt: pt, rx: rx, ry: ry, large: large, sweep: sweep})
	return p
}

func (p *PathData) Close() *PathData {
	p.segs = append(p.segs, segment{cmd: 'Z'})
	return p
}

func (p *PathData) Len() int {
	return len(p.segs)
}

// Format renders the commands, e.g. "M288 0 A 288 288 0 0 0 0 288".
func (p *PathData) Format(f numfmt.Formatter) string {
	var sb strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.cmd {
		case 'M', 'L':
			sb.WriteByte(s.cmd)
			sb.WriteString(f.Join(s.pt.X, s.pt.Y))
		case 'A':
			sb.WriteString("A ")
			sb.WriteString(f.Join(s.rx, s.ry))
			sb.WriteString(" 0 ")
			sb.WriteString(flag(s.large))
			sb.WriteByte(' ')
			sb.WriteString(flag(s.sweep))
			sb.WriteByte(' ')
			sb.WriteString(f.Join(s.pt.X, s.pt.Y))
		case 'Z':
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
