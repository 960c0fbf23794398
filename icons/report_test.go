package icons

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launcher-icons/testing/snapshot"
)

func TestReportGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf))

	snapshot.New(t).Assert("report", buf.String())
}

func TestReportPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf))

	assert.NotContains(t, buf.String(), "\x1b", "buffers should get no escape codes")
}

func TestReportDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Report(&first))
	require.NoError(t, Report(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestReportSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf))

	lines := snapshot.Lines(buf.String())
	require.Len(t, lines, 1+5+1+1+3+1+1+4)

	assert.Equal(t, Banner, lines[0])
	assert.Equal(t, []string{
		"mdpi: 48x48 px",
		"hdpi: 72x72 px",
		"xhdpi: 96x96 px",
		"xxhdpi: 144x144 px",
		"xxxhdpi: 192x192 px",
	}, lines[1:6])

	assert.Equal(t, "", lines[6])
	assert.Equal(t, TipsHeading, lines[7])
	for i, tip := range Tips() {
		assert.Equal(t, "- "+tip, lines[8+i])
	}

	assert.Equal(t, "", lines[11])
	assert.Equal(t, FilesHeading, lines[12])
	for i, f := range Files() {
		assert.Equal(t, "  "+f, lines[13+i])
	}
}

func TestReportStyledMatchesPlain(t *testing.T) {
	var styled bytes.Buffer
	r := lipgloss.NewRenderer(&styled)
	r.SetColorProfile(termenv.TrueColor)
	require.NoError(t, reportWithRenderer(&styled, r))

	var plain bytes.Buffer
	require.NoError(t, Report(&plain))

	assert.Contains(t, styled.String(), "\x1b[", "forced truecolor should emit escape codes")
	assert.Equal(t, plain.String(), snapshot.StripANSI(styled.String()))
}

func TestStylesUseFixedColors(t *testing.T) {
	// AdaptiveColor would make the renderer query the terminal background.
	var _ lipgloss.Color = Accent
	var _ lipgloss.Color = Muted

	s := newStyles(lipgloss.NewRenderer(&bytes.Buffer{}))
	assert.Equal(t, Accent, s.banner.GetForeground())
	assert.Equal(t, Muted, s.tip.GetForeground())
}

type failingWriter struct {
	writes int
	failAt int
}

var errClosed = errors.New("write on closed pipe")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes >= w.failAt {
		return 0, errClosed
	}
	return len(p), nil
}

func TestReportWriteError(t *testing.T) {
	w := &failingWriter{failAt: 3}
	err := Report(w)

	require.Error(t, err)
	assert.ErrorIs(t, err, errClosed)
	assert.Equal(t, 3, w.writes, "no writes should follow the first failure")
}
