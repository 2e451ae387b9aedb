package barview

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"kline-tools/internal/model"
)

const separatorWidth = 130

// Previewer renders bounded table dumps to a single output stream.
type Previewer struct {
	Out  io.Writer
	Opts FormatOptions
}

// New creates a Previewer writing to out.
func New(out io.Writer, opts FormatOptions) *Previewer {
	return &Previewer{Out: out, Opts: opts}
}

// Preview selects, formats and renders a head/tail window of t in one call.
func (p *Previewer) Preview(t Table, head, tail int) error {
	v, err := Format(Select(t, head, tail), p.Opts)
	if err != nil {
		return err
	}
	return p.Render(v)
}

// Render writes the labeled head dump, a separator, the labeled tail dump and
// a summary line with the source table's total row count.
func (p *Previewer) Render(v View) error {
	if err := p.renderBlock("head", len(v.Head), func(tw *tabwriter.Writer) {
		for _, r := range v.Head {
			writeViewRow(tw, r)
		}
	}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.Out, strings.Repeat("=", separatorWidth)); err != nil {
		return err
	}
	if err := p.renderBlock("tail", len(v.Tail), func(tw *tabwriter.Writer) {
		for _, r := range v.Tail {
			writeViewRow(tw, r)
		}
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.Out, "rows: %d\n", v.Total)
	return err
}

// RenderRaw is Render without the timestamp rewrite: OpenTime and CloseTime
// stay raw epoch integers.
func (p *Previewer) RenderRaw(w Window) error {
	if err := p.renderBlock("head", len(w.Head), func(tw *tabwriter.Writer) {
		for _, b := range w.Head {
			writeRawRow(tw, b)
		}
	}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.Out, strings.Repeat("=", separatorWidth)); err != nil {
		return err
	}
	if err := p.renderBlock("tail", len(w.Tail), func(tw *tabwriter.Writer) {
		for _, b := range w.Tail {
			writeRawRow(tw, b)
		}
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.Out, "rows: %d\n", w.Total)
	return err
}

func (p *Previewer) renderBlock(label string, n int, rows func(*tabwriter.Writer)) error {
	if _, err := fmt.Fprintf(p.Out, "%s (%d rows)\n", label, n); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(p.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Open Time\tOpen\tHigh\tLow\tClose\tVolume\tClose Time")
	rows(tw)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.Out)
	return err
}

func writeViewRow(tw *tabwriter.Writer, r ViewRow) {
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		r.OpenTime, floatStr(r.Open), floatStr(r.High), floatStr(r.Low),
		floatStr(r.Close), floatStr(r.Volume), r.CloseTime)
}

func writeRawRow(tw *tabwriter.Writer, b model.Bar) {
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
		b.OpenTime, floatStr(b.Open), floatStr(b.High), floatStr(b.Low),
		floatStr(b.Close), floatStr(b.Volume), b.CloseTime)
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
