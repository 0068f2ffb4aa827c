package geom

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// FormatWKT renders each layer as one MULTILINESTRING, one per line.
// Layers without lines are written as MULTILINESTRING EMPTY.
func FormatWKT(d Data) string {
	var b strings.Builder
	for i, l := range d.Layers {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(l.Lines) == 0 {
			b.WriteString("MULTILINESTRING EMPTY")
			continue
		}
		b.WriteString("MULTILINESTRING (")
		for j, ls := range l.Lines {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			for k, p := range ls {
				if k > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fmtCoord(p[0]))
				b.WriteByte(' ')
				b.WriteString(fmtCoord(p[1]))
			}
			b.WriteByte(')')
		}
		b.WriteByte(')')
	}
	return b.String()
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveWKT writes FormatWKT(d) to path.
func SaveWKT(path string, d Data) error {
	if len(d.Layers) == 0 {
		return errors.New("wkt: no layers to write")
	}
	return os.WriteFile(path, []byte(FormatWKT(d)+"\n"), 0o644)
}
