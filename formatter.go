package fragmen

import (
	"strings"
)

// Renderer turns markdown into text suitable for the terminal.
type Renderer interface {
	Render(markdown string) (string, error)
}

// FormatFragment formats a fragment's documentation as markdown.
// Sections without content are omitted; the source is always included.
func FormatFragment(f *Fragment) string {
	var b strings.Builder

	b.WriteString("# " + f.Slug + "\n")

	if f.Description != "" {
		b.WriteString("\n" + f.Description + "\n")
	}

	if len(f.Tags) > 0 || f.Since != "" {
		b.WriteString("\n")
		if len(f.Tags) > 0 {
			b.WriteString("Tags: " + strings.Join(f.Tags, ", "))
			if f.Since != "" {
				b.WriteString("  \n")
			}
		}
		if f.Since != "" {
			b.WriteString("Since: " + f.Since)
		}
		b.WriteString("\n")
	}

	if len(f.Params) > 0 {
		b.WriteString("\n## Parameters\n\n")
		b.WriteString("| Name | Type | Description |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, p := range f.Params {
			b.WriteString("| " + p.Name + " | `" + p.Type + "` | " + p.Description + " |\n")
		}
	}

	if f.Returns.Type != "" {
		b.WriteString("\n## Returns\n\n`" + f.Returns.Type + "`")
		if f.Returns.Description != "" {
			b.WriteString(" " + f.Returns.Description)
		}
		b.WriteString("\n")
	}

	if len(f.Examples) > 0 {
		b.WriteString("\n## Examples\n")
		for _, ex := range f.Examples {
			b.WriteString("\n" + fence(ex) + "\n")
		}
	}

	b.WriteString("\n## Source\n\n" + fence(strings.TrimRight(f.Source, "\n")) + "\n")

	return b.String()
}

// fence wraps code in a ts code fence unless it is already fenced.
func fence(code string) string {
	if strings.HasPrefix(strings.TrimSpace(code), "```") {
		return code
	}
	return "```ts\n" + code + "\n```"
}
