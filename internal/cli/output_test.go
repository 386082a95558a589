package cli

import (
	"bytes"
	"slices"
	"testing"
)

func TestPrinterDonePlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Done("Saved preset: %s", "work")

	if got := buf.String(); got != "Saved preset: work\n" {
		t.Errorf("Done() wrote %q", got)
	}
}

func TestPrinterDoneStyled(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{w: &buf, isTTY: true}

	p.Done("Loaded preset: %s", "work")

	got := buf.String()
	if got == "Loaded preset: work\n" {
		t.Error("expected styled output on a terminal")
	}
	if !bytes.Contains(buf.Bytes(), []byte("work")) {
		t.Errorf("styled output lost the name: %q", got)
	}
}

func TestPrinterNames(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Names(slices.Values([]string{"a", "b"}))

	if got := buf.String(); got != "a\nb\n" {
		t.Errorf("Names() wrote %q", got)
	}
}
