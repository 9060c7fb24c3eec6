package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// overrides catch names Chroma's filename globs miss or get wrong for
// the files people usually open side by side.
var overrides = map[string]string{
	"dockerfile": "docker",
	"makefile":   "make",
	"gemfile":    "ruby",
	"rakefile":   "ruby",
	".zsh":       "zsh",
	".conf":      "nginx",
	".tsx":       "tsx",
	".jsx":       "react",
}

// DetectLanguage returns the Chroma lexer name for path, or "" when no
// lexer matches and the content should be shown as-is.
func DetectLanguage(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if lang, ok := overrides[base]; ok {
		return lang
	}
	if lang, ok := overrides[filepath.Ext(base)]; ok {
		return lang
	}
	if lex := lexers.Match(base); lex != nil {
		return strings.ToLower(lex.Config().Name)
	}
	return ""
}
