package svg

import (
	"math"

	"github.com/pkg/errors"
)

// pathParser converts SVG path data into absolute MoveTo, LineTo, CubicTo
// and Close segments. Quadratic curves are raised to cubics and elliptical
// arcs are approximated with cubics.
type pathParser struct {
	b    []byte
	segs []Segment

	cur, start Point
	// ctrl is the last control point of the previous curve, used by the
	// smooth commands.
	ctrl    Point
	lastCmd byte
	// needMove is set after a close so that the next drawing command starts
	// a new subpath at the start point.
	needMove bool
}

// parsePathData parses the d attribute. On error the segments parsed
// before the error are returned along with it.
func parsePathData(d string) ([]Segment, error) {
	p := &pathParser{b: []byte(d)}
	err := p.parse()
	if k := len(p.segs); k > 0 && p.segs[k-1].Kind == MoveTo {
		p.segs = p.segs[:k-1]
	}
	return p.segs, err
}

func (p *pathParser) parse() error {
	var cmd byte
	for {
		p.b = skipSeparators(p.b)
		if len(p.b) == 0 {
			return nil
		}
		c := p.b[0]
		switch {
		case isCommand(c):
			cmd = c
			p.b = p.b[1:]
		case cmd == 0:
			return errors.Wrapf(ErrInvalidPathData, "expected command at %q", truncate(p.b))
		case cmd == 'M':
			cmd = 'L'
		case cmd == 'm':
			cmd = 'l'
		case cmd == 'Z' || cmd == 'z':
			return errors.Wrapf(ErrInvalidPathData, "unexpected %q after close", truncate(p.b))
		}
		if len(p.segs) == 0 && cmd != 'M' && cmd != 'm' {
			return errors.Wrap(ErrInvalidPathData, "path data must start with a moveto")
		}
		if err := p.command(cmd); err != nil {
			return err
		}
		p.lastCmd = cmd
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (p *pathParser) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range n {
		p.b = skipSeparators(p.b)
		f, rest, err := parseNumber(p.b)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidPathData, err.Error())
		}
		out[i] = f
		p.b = rest
	}
	return out, nil
}

func (p *pathParser) flag() (bool, error) {
	p.b = skipSeparators(p.b)
	if len(p.b) == 0 || (p.b[0] != '0' && p.b[0] != '1') {
		return false, errors.Wrap(ErrInvalidPathData, "expected arc flag")
	}
	f := p.b[0] == '1'
	p.b = p.b[1:]
	return f, nil
}

func (p *pathParser) rel(cmd byte, x, y float64) Point {
	if cmd >= 'a' {
		return Point{X: p.cur.X + x, Y: p.cur.Y + y}
	}
	return Point{X: x, Y: y}
}

func (p *pathParser) ensureSubpath() {
	if p.needMove {
		p.segs = append(p.segs, Segment{Kind: MoveTo, P: p.start})
		p.needMove = false
	}
}

func (p *pathParser) lineTo(pt Point) {
	p.ensureSubpath()
	p.segs = append(p.segs, Segment{Kind: LineTo, P: pt})
	p.cur = pt
	p.ctrl = pt
}

func (p *pathParser) cubicTo(c1, c2, pt Point) {
	p.ensureSubpath()
	p.segs = append(p.segs, Segment{Kind: CubicTo, C1: c1, C2: c2, P: pt})
	p.cur = pt
	p.ctrl = c2
}

func (p *pathParser) quadTo(q, pt Point) {
	c1 := Point{X: p.cur.X + 2.0/3*(q.X-p.cur.X), Y: p.cur.Y + 2.0/3*(q.Y-p.cur.Y)}
	c2 := Point{X: pt.X + 2.0/3*(q.X-pt.X), Y: pt.Y + 2.0/3*(q.Y-pt.Y)}
	p.cubicTo(c1, c2, pt)
	p.ctrl = q
}

// reflectCtrl returns the reflection of the previous control point when
// the previous command is one of the given kinds, else the current point.
func (p *pathParser) reflectCtrl(kinds string) Point {
	for i := 0; i < len(kinds); i++ {
		if p.lastCmd == kinds[i] {
			return Point{X: 2*p.cur.X - p.ctrl.X, Y: 2*p.cur.Y - p.ctrl.Y}
		}
	}
	return p.cur
}

func (p *pathParser) command(cmd byte) error {
	switch cmd {
	case 'Z', 'z':
		if len(p.segs) > 0 && p.segs[len(p.segs)-1].Kind != Close {
			p.segs = append(p.segs, Segment{Kind: Close})
		}
		p.cur = p.start
		p.ctrl = p.start
		p.needMove = true
		return nil
	case 'M', 'm':
		n, err := p.numbers(2)
		if err != nil {
			return err
		}
		pt := p.rel(cmd, n[0], n[1])
		if k := len(p.segs); k > 0 && p.segs[k-1].Kind == MoveTo {
			p.segs[k-1].P = pt
		} else {
			p.segs = append(p.segs, Segment{Kind: MoveTo, P: pt})
		}
		p.cur, p.start, p.ctrl = pt, pt, pt
		p.needMove = false
		return nil
	case 'L', 'l':
		n, err := p.numbers(2)
		if err != nil {
			return err
		}
		p.lineTo(p.rel(cmd, n[0], n[1]))
	case 'H', 'h':
		n, err := p.numbers(1)
		if err != nil {
			return err
		}
		x := n[0]
		if cmd == 'h' {
			x += p.cur.X
		}
		p.lineTo(Point{X: x, Y: p.cur.Y})
	case 'V', 'v':
		n, err := p.numbers(1)
		if err != nil {
			return err
		}
		y := n[0]
		if cmd == 'v' {
			y += p.cur.Y
		}
		p.lineTo(Point{X: p.cur.X, Y: y})
	case 'C', 'c':
		n, err := p.numbers(6)
		if err != nil {
			return err
		}
		p.cubicTo(p.rel(cmd, n[0], n[1]), p.rel(cmd, n[2], n[3]), p.rel(cmd, n[4], n[5]))
	case 'S', 's':
		n, err := p.numbers(4)
		if err != nil {
			return err
		}
		c1 := p.reflectCtrl("CcSs")
		p.cubicTo(c1, p.rel(cmd, n[0], n[1]), p.rel(cmd, n[2], n[3]))
	case 'Q', 'q':
		n, err := p.numbers(4)
		if err != nil {
			return err
		}
		p.quadTo(p.rel(cmd, n[0], n[1]), p.rel(cmd, n[2], n[3]))
	case 'T', 't':
		n, err := p.numbers(2)
		if err != nil {
			return err
		}
		q := p.reflectCtrl("QqTt")
		p.quadTo(q, p.rel(cmd, n[0], n[1]))
	case 'A', 'a':
		n, err := p.numbers(3)
		if err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		end, err := p.numbers(2)
		if err != nil {
			return err
		}
		p.arcTo(n[0], n[1], n[2], large, sweep, p.rel(cmd, end[0], end[1]))
	}
	return nil
}

// arcTo appends an elliptical arc as cubic segments, following the
// endpoint to center parameterization of the SVG implementation notes.
func (p *pathParser) arcTo(rx, ry, rotation float64, large, sweep bool, end Point) {
	start := p.cur
	if start == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.lineTo(end)
		return
	}

	sinPhi, cosPhi := math.Sincos(rotation * math.Pi / 180)
	dx2 := (start.X - end.X) / 2
	dy2 := (start.Y - end.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den > 0 {
		coef = math.Sqrt(max(0, num/den))
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	}
	theta := angle(1, 0, (x1-cxp)/rx, (y1-cyp)/ry)
	delta := angle((x1-cxp)/rx, (y1-cyp)/ry, (-x1-cxp)/rx, (-y1-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	onEllipse := func(ux, uy float64) Point {
		return Point{
			X: cx + rx*cosPhi*ux - ry*sinPhi*uy,
			Y: cy + rx*sinPhi*ux + ry*cosPhi*uy,
		}
	}

	n := max(1, int(math.Ceil(math.Abs(delta)/(math.Pi/2)-1e-9)))
	step := delta / float64(n)
	k := 4.0 / 3 * math.Tan(step/4)
	for i := range n {
		t1 := theta + step*float64(i)
		t2 := t1 + step
		s1, c1 := math.Sincos(t1)
		s2, c2 := math.Sincos(t2)
		to := onEllipse(c2, s2)
		if i == n-1 {
			to = end
		}
		p.cubicTo(onEllipse(c1-k*s1, s1+k*c1), onEllipse(c2+k*s2, s2-k*c2), to)
	}
}
