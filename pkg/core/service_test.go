package core_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notegen/pkg/core"
)

// MockSource implements core.TableSource in memory.
type MockSource struct {
	rows []core.NoteRow
	err  error
}

func (m *MockSource) Rows(ctx context.Context) ([]core.NoteRow, error) {
	return m.rows, m.err
}

func (m *MockSource) ComponentType() string {
	return "mock"
}

// lineRenderer renders one "identifier raw literal" line per entry.
type lineRenderer struct {
	reserved []string
	err      error
}

func (r *lineRenderer) Render(c *core.Catalog) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	var sb strings.Builder
	for _, e := range c.Entries() {
		sb.WriteString(e.Identifier + " " + e.RawName + " " + e.Literal + "\n")
	}
	return []byte(sb.String()), nil
}

func (r *lineRenderer) Reserved() []string {
	return r.reserved
}

// failingWriter counts writes and always fails.
type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	rows := []core.NoteRow{
		core.NewNoteRow("C#/Db", 277.18),
		core.NewNoteRow("A", 440),
	}

	t.Run("Writes the rendered catalog", func(t *testing.T) {
		svc := core.NewService(&MockSource{rows: rows}, &lineRenderer{})

		var buf bytes.Buffer
		require.NoError(t, svc.Generate(ctx, &buf))
		assert.Equal(t, "Cs C# 277.18\nDb Db 277.18\nA A 440.0\n", buf.String())

		state, ok := svc.State().(core.ServiceState)
		require.True(t, ok)
		assert.Equal(t, 2, state.Rows)
		assert.Equal(t, 3, state.Variants)
		assert.Equal(t, buf.Len(), state.BytesWritten)
		assert.Equal(t, "mock", state.SourceType)
	})

	t.Run("Acquisition failure produces no output", func(t *testing.T) {
		src := &MockSource{err: core.ErrAcquisition}
		svc := core.NewService(src, &lineRenderer{})

		var buf bytes.Buffer
		err := svc.Generate(ctx, &buf)
		assert.ErrorIs(t, err, core.ErrAcquisition)
		assert.Zero(t, buf.Len())
	})

	t.Run("Empty table is an acquisition failure", func(t *testing.T) {
		svc := core.NewService(&MockSource{}, &lineRenderer{})
		assert.ErrorIs(t, svc.Generate(ctx, &bytes.Buffer{}), core.ErrAcquisition)
	})

	t.Run("Collision produces no output", func(t *testing.T) {
		src := &MockSource{rows: []core.NoteRow{
			core.NewNoteRow("A", 440),
			core.NewNoteRow("A", 440),
		}}
		svc := core.NewService(src, &lineRenderer{})

		var buf bytes.Buffer
		assert.ErrorIs(t, svc.Generate(ctx, &buf), core.ErrCollision)
		assert.Zero(t, buf.Len())
	})

	t.Run("Reserved names come from the renderer", func(t *testing.T) {
		src := &MockSource{rows: []core.NoteRow{core.NewNoteRow("Note", 1)}}
		svc := core.NewService(src, &lineRenderer{reserved: []string{"Note"}})
		assert.ErrorIs(t, svc.Generate(ctx, &bytes.Buffer{}), core.ErrInvalidIdentifier)
	})

	t.Run("Render failure is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		svc := core.NewService(&MockSource{rows: rows}, &lineRenderer{err: boom})
		assert.ErrorIs(t, svc.Generate(ctx, &bytes.Buffer{}), boom)
	})

	t.Run("Output is written once", func(t *testing.T) {
		svc := core.NewService(&MockSource{rows: rows}, &lineRenderer{})
		w := &failingWriter{}
		assert.Error(t, svc.Generate(ctx, w))
		assert.Equal(t, 1, w.writes)
	})

	t.Run("Filter keeps order", func(t *testing.T) {
		svc := core.NewService(&MockSource{rows: rows}, &lineRenderer{},
			core.WithFilter(func(raw string) bool { return raw != "Db" }))

		var buf bytes.Buffer
		require.NoError(t, svc.Generate(ctx, &buf))
		assert.Equal(t, "Cs C# 277.18\nA A 440.0\n", buf.String())
	})
}

func TestService_Catalog(t *testing.T) {
	svc := core.NewService(&MockSource{rows: []core.NoteRow{core.NewNoteRow("A", 440)}}, nil)
	c, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, c.Identifiers())

	assert.Error(t, svc.Generate(context.Background(), &bytes.Buffer{}), "generate needs a renderer")
}

func TestService_StateResetsEachRun(t *testing.T) {
	ctx := context.Background()
	src := &MockSource{rows: []core.NoteRow{
		core.NewNoteRow("C#/Db", 277.18),
		core.NewNoteRow("A", 440),
	}}
	svc := core.NewService(src, &lineRenderer{})

	require.NoError(t, svc.Generate(ctx, &bytes.Buffer{}))
	state := svc.State().(core.ServiceState)
	require.Equal(t, 3, state.Variants)
	require.NotZero(t, state.BytesWritten)

	src.rows, src.err = nil, core.ErrAcquisition
	_, err := svc.Catalog(ctx)
	require.ErrorIs(t, err, core.ErrAcquisition)

	state = svc.State().(core.ServiceState)
	assert.Zero(t, state.Rows)
	assert.Zero(t, state.Aliases)
	assert.Zero(t, state.Variants)
	assert.Zero(t, state.BytesWritten)
}
