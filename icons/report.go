package icons

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	Banner       = "Launcher icon sizes"
	TipsHeading  = "Tips:"
	FilesHeading = "Files to replace in each mipmap folder:"
)

// Report writes the size table, tips and file checklist to w. Color is only
// emitted when w is a terminal.
func Report(w io.Writer) error {
	return reportWithRenderer(w, lipgloss.NewRenderer(w))
}

func reportWithRenderer(w io.Writer, r *lipgloss.Renderer) error {
	s := newStyles(r)
	p := &printer{w: w}

	p.line(s.banner.Render(Banner))
	for _, d := range densities {
		p.line(d.String())
	}

	p.line("")
	p.line(s.heading.Render(TipsHeading))
	for _, tip := range tips {
		p.line(s.tip.Render("- " + tip))
	}

	p.line("")
	p.line(s.heading.Render(FilesHeading))
	for _, f := range files {
		p.line("  " + f)
	}

	if p.err != nil {
		return fmt.Errorf("failed to write report: %w", p.err)
	}
	return nil
}

// printer keeps the first write error and drops everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
