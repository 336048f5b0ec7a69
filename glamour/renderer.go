// Package glamour renders fragment documentation for the terminal.
package glamour

import (
	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/fragmen"
)

// Ensure Renderer implements fragmen.Renderer at compile time.
var _ fragmen.Renderer = (*Renderer)(nil)

// Style names accepted by NewRenderer.
const (
	StyleAuto  = "auto"
	StyleNoTTY = "notty"
	StyleDark  = "dark"
	StyleLight = "light"
)

// Renderer renders markdown with glamour.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer that wraps at width columns. StyleAuto
// picks a style from the terminal.
func NewRenderer(style string, width int) (*Renderer, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == StyleAuto || style == "" {
		styleOpt = glamour.WithAutoStyle()
	}

	term, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{term: term}, nil
}

// Render converts markdown to styled terminal text.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.term.Render(markdown)
}
