package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ParseDeclarations parses a list of CSS declarations, as found in an inline
// style attribute:
//
//    opacity: 0; transform: translateY(20px)
//
// A missing final semicolon is tolerated. "!important" markers are kept on
// the resulting KeyValue and rendered back by Declarations.String.
func ParseDeclarations(text string) (Declarations, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") && !strings.HasSuffix(text, "}") {
		text += ";" // douceur drops a final declaration without terminator
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("style: cannot parse declarations %q: %w", text, err)
	}
	d := make(Declarations, 0, len(decls))
	for _, decl := range decls {
		if decl.Property == "" {
			tracer().Debugf("style: skipping declaration without property in %q", text)
			continue
		}
		d = d.SetKeyValue(KeyValue{
			Key:       decl.Property,
			Value:     Property(decl.Value),
			Important: decl.Important,
		})
	}
	return d, nil
}

// MustParseDeclarations is like ParseDeclarations, but panics on error.
// It is intended for static preset tables and tests.
func MustParseDeclarations(text string) Declarations {
	d, err := ParseDeclarations(text)
	if err != nil {
		panic(err)
	}
	return d
}
