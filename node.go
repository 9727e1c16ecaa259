package inspect

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// node is one element of the document tree built from a value. Widths are
// computed once at construction from already-built children and never
// re-derived from rendered text.
type node interface {
	size() int
	breaks() bool
	render(offset, indent, pad int) string
}

type base struct {
	depth       int
	length      int
	breakLength int
	breakAlways bool
}

func (b *base) size() int    { return b.length }
func (b *base) breaks() bool { return b.breakAlways }

type leaf struct {
	base
	text    string
	style   Style
	stylize StylizeFunc
}

func newLeaf(text string, style Style, depth int, c *config) *leaf {
	return &leaf{
		base:    base{depth: depth, length: displayWidth(text), breakLength: c.breakLength},
		text:    text,
		style:   style,
		stylize: c.stylize,
	}
}

func (l *leaf) render(offset, indent, pad int) string {
	s := l.text
	if l.style != StyleNone {
		s = l.stylize(s, l.style)
	}
	s = padding(pad, l.length) + s
	if offset == 0 {
		s = indentation(indent) + s
	}
	return s
}

// newSuspension summarizes omitted trailing items. It always starts its own
// row so truncated grids stay visually apart from the properties that follow.
func newSuspension(omitted, depth int, c *config) *leaf {
	l := newLeaf("... "+strconv.Itoa(omitted)+" more", StyleNone, depth, c)
	l.breakAlways = true
	return l
}

type pair struct {
	base
	delim       string
	delimWidth  int
	left, right node
}

func newPair(delim string, left, right node, depth int, c *config) *pair {
	dw := displayWidth(delim)
	return &pair{
		base:       base{depth: depth, length: left.size() + dw + right.size(), breakLength: c.breakLength},
		delim:      delim,
		delimWidth: dw,
		left:       left,
		right:      right,
	}
}

func (p *pair) render(offset, indent, _ int) string {
	var b strings.Builder
	pos := offset
	if offset == 0 {
		b.WriteString(indentation(indent))
		pos = indent * 2
	}
	b.WriteString(p.left.render(pos, 0, 0))
	b.WriteString(p.delim)
	b.WriteString(p.right.render(pos+p.left.size()+p.delimWidth, indent, 0))
	return b.String()
}

// refPrefixWidth is reserved in a sequence whose slot is circular; the id
// digits are not counted.
var refPrefixWidth = len("<ref *> ")

type sequence struct {
	base
	header, footer string
	delim          string
	delimWidth     int
	children       []node
	ref            *ref
	tabulate       bool
}

type seqSpec struct {
	header, footer, delim string
	ref                   *ref
	tabulate              bool
}

func newSequence(s seqSpec, children []node, depth int, c *config) *sequence {
	dw := displayWidth(s.delim)
	n := displayWidth(s.header) + displayWidth(s.footer)
	for i, child := range children {
		n += child.size()
		if i > 0 {
			n += dw
		}
	}
	if s.ref != nil && s.ref.circular {
		n += refPrefixWidth
	}
	return &sequence{
		base:       base{depth: depth, length: n, breakLength: c.breakLength},
		header:     s.header,
		footer:     s.footer,
		delim:      s.delim,
		delimWidth: dw,
		children:   children,
		ref:        s.ref,
		tabulate:   s.tabulate,
	}
}

// ref is the per-call slot of one object identity. It doubles as the
// placeholder node returned when the object is re-entered while still on
// the traversal stack.
type ref struct {
	base
	tracker  *tracker
	id       int
	count    int
	circular bool
}

var circularWidth = len("[circular *]")

func (r *ref) increment() int { r.count++; return r.count }
func (r *ref) decrement() int { r.count--; return r.count }

func (r *ref) ident() int { return r.tracker.idOf(r) }

func (r *ref) render(offset, indent, pad int) string {
	s := padding(pad, r.length) + "[circular *" + strconv.Itoa(r.ident()) + "]"
	if offset == 0 {
		s = indentation(indent) + s
	}
	return s
}

func indentation(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("  ", n)
}

func padding(pad, width int) string {
	if pad <= width {
		return ""
	}
	return strings.Repeat(" ", pad-width)
}

// displayWidth is the terminal column width of s, ignoring SGR escape
// sequences a stylize function may have embedded.
func displayWidth(s string) int {
	if strings.IndexByte(s, '\x1b') < 0 {
		return runewidth.StringWidth(s)
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			if j < len(s) && s[j] == 'm' {
				i = j
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return runewidth.StringWidth(b.String())
}
