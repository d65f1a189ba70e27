package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/customer-list/internal/config"
	"github.com/ytget/customer-list/internal/model"
)

func fixedExporter(fontPath string) *PDFExporter {
	e := NewPDFExporter(DefaultLabels(), fontPath)
	e.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	return e
}

func TestExport_WritesPDF(t *testing.T) {
	customers := []model.Customer{
		{ID: 1, Name: "Kim", Company: "A"},
		{ID: 2, Name: "Lee", Company: "B"},
	}

	var buf bytes.Buffer
	err := fixedExporter("").Export(&buf, slices.Values(customers))
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF document")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestExport_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	err := fixedExporter("").Export(&buf, slices.Values([]model.Customer(nil)))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExport_LatinNamesSurvive(t *testing.T) {
	e := fixedExporter("")
	e.compress = false
	customers := []model.Customer{{ID: 1, Name: "José Müller", Company: "Café"}}

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, slices.Values(customers)))

	out := buf.Bytes()
	assert.True(t, bytes.Contains(out, []byte("(Jos\xe9 M\xfcller) Tj")), "name should be printed in Windows-1252")
	assert.True(t, bytes.Contains(out, []byte("(Caf\xe9) Tj")))
}

func TestExport_HangulWithoutFont(t *testing.T) {
	e := fixedExporter("")
	e.fallbackFonts = nil

	var buf bytes.Buffer
	err := e.Export(&buf, slices.Values([]model.Customer{{ID: 1, Name: "김민준", Company: "네이버"}}))

	require.ErrorIs(t, err, ErrFontRequired)
	assert.Contains(t, err.Error(), config.EnvPDFFont)
	assert.Contains(t, err.Error(), "김민준")
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestExport_HangulLabelsWithoutFont(t *testing.T) {
	e := NewPDFExporter(Labels{Title: "고객 목록", Name: "이름", Company: "회사", NoResults: "-"}, "")
	e.fallbackFonts = nil

	var buf bytes.Buffer
	err := e.Export(&buf, slices.Values([]model.Customer{{ID: 1, Name: "Kim"}}))

	assert.ErrorIs(t, err, ErrFontRequired)
	assert.Zero(t, buf.Len())
}

func TestResolveFont(t *testing.T) {
	dir := t.TempDir()
	installed := filepath.Join(dir, "hangul.ttf")
	require.NoError(t, os.WriteFile(installed, []byte("ttf"), 0o644))
	hangul := []model.Customer{{ID: 1, Name: "김민준"}}

	t.Run("configured font wins", func(t *testing.T) {
		e := fixedExporter("/fonts/custom.ttf")
		e.fallbackFonts = []string{installed}

		path, err := e.resolveFont(hangul)
		require.NoError(t, err)
		assert.Equal(t, "/fonts/custom.ttf", path)
	})

	t.Run("core font for latin text", func(t *testing.T) {
		e := fixedExporter("")
		e.fallbackFonts = []string{installed}

		path, err := e.resolveFont([]model.Customer{{ID: 1, Name: "Kim", Company: "Acme"}})
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("first installed fallback", func(t *testing.T) {
		e := fixedExporter("")
		e.fallbackFonts = []string{filepath.Join(dir, "missing.ttf"), dir, installed}

		path, err := e.resolveFont(hangul)
		require.NoError(t, err)
		assert.Equal(t, installed, path)
	})
}

func TestExport_MissingFont(t *testing.T) {
	var buf bytes.Buffer
	err := fixedExporter(filepath.Join(t.TempDir(), "missing.ttf")).
		Export(&buf, slices.Values([]model.Customer{{ID: 1, Name: "Kim"}}))

	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExport_WriterError(t *testing.T) {
	err := fixedExporter("").Export(failingWriter{}, slices.Values([]model.Customer{{ID: 1, Name: "Kim"}}))
	assert.Error(t, err)
}

func TestExport_StopsAtSequenceEnd(t *testing.T) {
	calls := 0
	seq := func(yield func(model.Customer) bool) {
		for i := 1; i <= 3; i++ {
			calls++
			if !yield(model.Customer{ID: i, Name: "n"}) {
				return
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, fixedExporter("").Export(&buf, seq))
	assert.Equal(t, 3, calls)
}
