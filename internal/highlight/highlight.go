// Package highlight colors panel content via Chroma and derives the palette
// dividers are drawn with.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const sgrReset = "\x1b[0m"

// Rows colors text for a panel and splits it into display rows. Every row
// opens with the SGR state left by the rows above it, so a panel can clip
// or drop rows freely. Without a language or a known theme the rows are
// plain text.
func Rows(text, language, theme string) []string {
	colored, ok := colorize(text, language, theme)
	if !ok {
		return strings.Split(text, "\n")
	}
	return carrySGR(strings.Split(colored, "\n"))
}

// colorize runs text through Chroma's true-color terminal formatter and
// keeps the theme background painted across token resets.
func colorize(text, language, theme string) (string, bool) {
	sty, known := styles.Registry[theme]
	lex := lexers.Get(language)
	if language == "" || !known || lex == nil {
		return "", false
	}
	tokens, err := chroma.Coalesce(lex).Tokenise(nil, text)
	if err != nil {
		return "", false
	}
	var buf strings.Builder
	if err := formatters.Get("terminal16m").Format(&buf, sty, tokens); err != nil {
		return "", false
	}

	bg := backgroundSGR(ThemePalette(theme).Bg)
	out := strings.TrimRight(buf.String(), "\n")
	return bg + strings.ReplaceAll(out, sgrReset, sgrReset+bg), true
}

func backgroundSGR(hex string) string {
	c := chroma.ParseColour(hex)
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.Red(), c.Green(), c.Blue())
}

// carrySGR prefixes each row with the SGR sequences still open after the
// rows before it. A bare or zero reset closes them all.
func carrySGR(rows []string) []string {
	var open []string
	for i, row := range rows {
		prefix := strings.Join(open, "")
		rest := row
		for {
			start := strings.Index(rest, "\x1b[")
			if start < 0 {
				break
			}
			rest = rest[start+2:]
			end := strings.IndexFunc(rest, func(r rune) bool {
				return (r < '0' || r > '9') && r != ';'
			})
			if end < 0 || rest[end] != 'm' {
				continue
			}
			params := rest[:end]
			rest = rest[end+1:]
			if params == "" || params == "0" {
				open = open[:0]
				continue
			}
			open = append(open, "\x1b["+params+"m")
		}
		rows[i] = prefix + row
	}
	return rows
}
