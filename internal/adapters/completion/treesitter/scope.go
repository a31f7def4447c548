//go:build cgo

package treesitter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/bnema/assistant-shell/internal/domain"
)

func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSyntax, lang)
	}
}

func functionNodeTypes(lang Language) map[string]struct{} {
	var types []string
	switch lang {
	case LangGo:
		types = []string{"function_declaration", "method_declaration"}
	case LangJavaScript, LangTypeScript, LangTSX:
		types = []string{"function_declaration", "function_expression", "arrow_function", "method_definition", "generator_function_declaration", "class_declaration"}
	case LangPython:
		types = []string{"function_definition", "class_definition"}
	}

	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// enclosingScope returns the name of the innermost named function, method or
// class containing offset, or "" at top level.
func enclosingScope(ctx context.Context, source []byte, lang Language, offset uint32) (string, error) {
	tsLang, err := getLanguage(lang)
	if err != nil {
		return "", err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tsLang)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return "", fmt.Errorf("parse %s source: %w", lang, err)
	}
	defer tree.Close()

	// Step back one byte so a cursor sitting right after a closing brace
	// still resolves to the node it follows.
	lookup := offset
	if lookup > 0 {
		lookup--
	}

	point := pointAt(source, lookup)
	types := functionNodeTypes(lang)
	for node := tree.RootNode().NamedDescendantForPointRange(point, point); node != nil; node = node.Parent() {
		if _, ok := types[node.Type()]; !ok {
			continue
		}
		if name := nodeName(node, source); name != "" {
			return name, nil
		}
	}

	return "", nil
}

func pointAt(source []byte, offset uint32) sitter.Point {
	var row, lineStart uint32
	for i := uint32(0); i < offset && int(i) < len(source); i++ {
		if source[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return sitter.Point{Row: row, Column: offset - lineStart}
}

func nodeName(node *sitter.Node, source []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return name.Content(source)
	}

	// Anonymous functions take the name of the variable they are bound to.
	parent := node.Parent()
	if parent != nil && parent.Type() == "variable_declarator" {
		if name := parent.ChildByFieldName("name"); name != nil {
			return name.Content(source)
		}
	}
	return ""
}
