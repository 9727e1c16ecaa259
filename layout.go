package inspect

import (
	"strconv"
	"strings"
)

func (s *sequence) split(offset, indent int) bool {
	return len(s.children) > 0 &&
		(offset+s.length > s.breakLength || indent*2+s.length > s.breakLength)
}

// columns returns the number of columns of a tabulated sequence laid out at
// indent and the width every item is padded to.
func (s *sequence) columns(indent int) (columns, pad int) {
	columns = 1
	if !s.tabulate {
		return columns, 0
	}
	widest := 0
	for _, c := range s.children {
		if !c.breaks() && c.size() > widest {
			widest = c.size()
		}
	}
	if widest == 0 {
		return columns, 0
	}
	columns = max(columns, (s.breakLength-indent*2)/(widest+s.delimWidth))
	if columns > 1 {
		pad = widest
	}
	return columns, pad
}

func (s *sequence) render(offset, indent, _ int) string {
	n := len(s.children)
	split := s.split(offset, indent)

	header := s.header
	if s.ref != nil && s.ref.circular {
		header = "<ref *" + strconv.Itoa(s.ref.ident()) + "> " + header
	}
	if n == 0 {
		header = strings.TrimRight(header, " ")
	}

	var b strings.Builder
	pos := offset
	if offset == 0 {
		b.WriteString(indentation(indent))
		pos = indent * 2
	}

	if !split {
		b.WriteString(header)
		pos += displayWidth(header)
		for i, c := range s.children {
			if i > 0 {
				b.WriteString(s.delim)
				pos += s.delimWidth
			}
			b.WriteString(c.render(pos, indent, 0))
			pos += c.size()
		}
		footer := s.footer
		if n == 0 {
			footer = strings.TrimLeft(footer, " ")
		}
		b.WriteString(footer)
		return b.String()
	}

	b.WriteString(strings.TrimRight(header, " "))
	b.WriteByte('\n')

	columns, pad := s.columns(indent)
	rowDelim := strings.TrimRight(s.delim, " \t")
	column := 0
	for i, c := range s.children {
		p := pad
		if c.breaks() {
			p = 0
		}
		if column == 0 {
			pos = (indent + 1) * 2
			b.WriteString(c.render(0, indent+1, p))
		} else {
			b.WriteString(c.render(pos, indent+1, p))
		}
		pos += max(p, c.size())
		column++
		if i == n-1 {
			break
		}
		if column == columns || c.breaks() || s.children[i+1].breaks() {
			b.WriteString(rowDelim)
			b.WriteByte('\n')
			column = 0
			continue
		}
		b.WriteString(s.delim)
		pos += s.delimWidth
	}

	b.WriteByte('\n')
	b.WriteString(indentation(indent))
	b.WriteString(strings.TrimLeft(s.footer, " "))
	return b.String()
}
