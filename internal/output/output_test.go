package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWritesJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatJSON, Writer: &buf})

	err := w.OK(&Response{
		Tool:   "seo_audit",
		Data:   map[string]any{"score": 87},
		Schema: map[string]any{"display": "score_card", "title": "SEO"},
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "seo_audit", got["tool"])
	assert.Contains(t, got, "data")
	assert.Contains(t, got, "ui")
}

func TestQuietWritesDataOnly(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatQuiet, Writer: &buf})

	require.NoError(t, w.OK(&Response{Tool: "seo_audit", Data: map[string]any{"score": 87}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.NotContains(t, got, "ok")
	assert.NotContains(t, got, "tool")
	assert.Equal(t, float64(87), got["score"])
}

func TestStyledUsesInjectedRenderer(t *testing.T) {
	var buf bytes.Buffer
	var gotStyled bool
	var gotSection string
	w := New(Options{
		Format:        FormatStyled,
		Writer:        &buf,
		ActiveSection: "meta",
		Render: func(data any, rawSchema any, styled bool, activeSection string) string {
			gotStyled = styled
			gotSection = activeSection
			return "rendered\n"
		},
	})

	require.NoError(t, w.OK(&Response{Data: map[string]any{}}))

	assert.Equal(t, "rendered\n", buf.String())
	assert.True(t, gotStyled)
	assert.Equal(t, "meta", gotSection)
}

func TestMarkdownPassesStyledFalse(t *testing.T) {
	var buf bytes.Buffer
	var gotStyled bool
	w := New(Options{
		Format: FormatMarkdown,
		Writer: &buf,
		Render: func(_ any, _ any, styled bool, _ string) string {
			gotStyled = styled
			return "## md\n"
		},
	})

	require.NoError(t, w.OK(&Response{Data: map[string]any{}}))
	assert.False(t, gotStyled)
	assert.Equal(t, "## md\n", buf.String())
}

func TestStyledWithoutRendererDegradesToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatStyled, Writer: &buf})

	require.NoError(t, w.OK(&Response{Data: map[string]any{"k": "v"}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v", got["k"])
}

func TestAutoFormatNonTTYIsJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatAuto, Writer: &buf})

	require.NoError(t, w.OK(&Response{Data: map[string]any{"k": "v"}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["ok"])
}

func TestErrJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatJSON, Writer: &buf})

	code := w.Err(ErrNotFound("/tmp/missing.json"))
	assert.Equal(t, ExitNotFound, code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.OK)
	assert.Equal(t, CodeNotFound, got.Code)
	assert.Contains(t, got.Error, "/tmp/missing.json")
}

func TestErrHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatStyled, Writer: &buf})

	code := w.Err(ErrInput("bad document", errors.New("unexpected EOF")))
	assert.Equal(t, ExitInput, code)
	assert.Contains(t, buf.String(), "Error: bad document")
	assert.Contains(t, buf.String(), "Hint:")
}

func TestErrWrapsUnknownErrors(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatJSON, Writer: &buf})

	code := w.Err(errors.New("boom"))
	assert.Equal(t, ExitInternal, code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, "boom", got.Error)
}

func TestAsErrorPreservesStructured(t *testing.T) {
	inner := ErrUsage("bad flag")
	wrapped := AsError(inner)
	assert.Same(t, inner, wrapped)
	assert.Equal(t, ExitUsage, wrapped.ExitCode())
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitUsage, ExitCodeFor(CodeUsage))
	assert.Equal(t, ExitNotFound, ExitCodeFor(CodeNotFound))
	assert.Equal(t, ExitInput, ExitCodeFor(CodeInput))
	assert.Equal(t, ExitInternal, ExitCodeFor("anything_else"))
}
