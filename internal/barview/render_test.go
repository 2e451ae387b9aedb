package barview

import (
	"strings"
	"testing"
)

func TestPreviewEndToEnd(t *testing.T) {
	var buf strings.Builder
	p := New(&buf, FormatOptions{})

	if err := p.Preview(hourTable(4), 2, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	sep := strings.Repeat("=", 130)
	for _, want := range []string{
		"head (2 rows)",
		"tail (2 rows)",
		"1970-01-01 00:00:00",
		"1970-01-01 01:00:00",
		"1970-01-01 02:00:00",
		"1970-01-01 03:00:00",
		sep,
		"rows: 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	headAt := strings.Index(out, "1970-01-01 00:00:00")
	sepAt := strings.Index(out, sep)
	tailAt := strings.LastIndex(out, "1970-01-01 02:00:00")
	if !(headAt < sepAt && sepAt < tailAt) {
		t.Errorf("blocks out of order: head@%d sep@%d tail@%d", headAt, sepAt, tailAt)
	}
	if !strings.HasSuffix(out, "rows: 4\n") {
		t.Errorf("summary line must be last:\n%s", out)
	}
}

func TestRenderRawKeepsEpochs(t *testing.T) {
	var buf strings.Builder
	p := New(&buf, FormatOptions{})

	if err := p.RenderRaw(Select(hourTable(4), 2, 2)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"3600000", "10800000", "rows: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1970-01-01") {
		t.Error("raw rendition must not format timestamps")
	}
}

func TestRenderEmptyTable(t *testing.T) {
	var buf strings.Builder
	p := New(&buf, FormatOptions{})
	if err := p.Preview(Table{}, 10, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "rows: 0") {
		t.Errorf("want rows: 0 summary:\n%s", buf.String())
	}
}
