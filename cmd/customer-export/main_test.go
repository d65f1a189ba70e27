package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/customer-list/internal/model"
	"github.com/ytget/customer-list/internal/report"
)

func TestRun_SampleData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")

	// Hangul sample names need a UTF-8 font; whether one is installed depends on the host
	err := run("", out, "", "", zaptest.NewLogger(t))
	if err != nil {
		require.ErrorIs(t, err, report.ErrFontRequired)
		assert.NoFileExists(t, out)
		return
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF", "output should be a PDF")
}

func TestRun_BadFontLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")

	err := run("", out, "", filepath.Join(t.TempDir(), "missing.ttf"), zaptest.NewLogger(t))

	assert.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestRun_DuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dup.json")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte(`[{"id":1,"name":"A"},{"id":1,"name":"B"}]`), 0o644))

	err := run(in, out, "", "", zaptest.NewLogger(t))

	assert.ErrorIs(t, err, model.ErrDuplicateID)
	assert.NoFileExists(t, out)
}

func TestRun_JSONInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte(`[{"id":1,"name":"Ann","company":"Acme"},{"id":2,"name":"Bob","company":""}]`), 0o644))

	require.NoError(t, run(in, out, "Ann", "", zaptest.NewLogger(t)))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestReadCustomers(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":7,"name":"Kim","company":"Naver"}]`), 0o644))

		list, err := readCustomers(path)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 7, list[0].ID)
		assert.Equal(t, "Kim", list[0].Name)
		assert.Equal(t, "Naver", list[0].Company)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readCustomers(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := filepath.Join(dir, "dup.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":2},{"id":3},{"id":2}]`), 0o644))

		_, err := readCustomers(path)
		assert.ErrorIs(t, err, model.ErrDuplicateID)
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		_, err := readCustomers(path)
		assert.Error(t, err)
	})
}
