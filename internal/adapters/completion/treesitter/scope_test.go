//go:build cgo

package treesitter

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFindsEnclosingFunction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		marker  string
		want    string
	}{
		{
			name:    "go function",
			path:    "main.go",
			content: "package main\n\nfunc run() error {\n\tx := 1\n\treturn nil\n}\n",
			marker:  "x := 1",
			want:    "run",
		},
		{
			name:    "go method",
			path:    "server.go",
			content: "package main\n\ntype S struct{}\n\nfunc (s *S) Start() {\n\tprintln(1)\n}\n",
			marker:  "println",
			want:    "Start",
		},
		{
			name:    "python nested",
			path:    "app.py",
			content: "class Shell:\n    def open(self):\n        return 1\n",
			marker:  "return 1",
			want:    "open",
		},
		{
			name:    "javascript arrow bound to const",
			path:    "ui.js",
			content: "const render = () => {\n  draw();\n};\n",
			marker:  "draw",
			want:    "render",
		},
		{
			name:    "typescript top level",
			path:    "index.ts",
			content: "const x: number = 1;\n",
			marker:  "1;",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := strings.Index(tt.content, tt.marker)
			require.GreaterOrEqual(t, idx, 0)
			line := strings.Count(tt.content[:idx], "\n")
			column := idx - (strings.LastIndex(tt.content[:idx], "\n") + 1)

			got, err := NewExtractor().Extract(context.Background(), domain.CompletionRequest{
				Path:    tt.path,
				Content: tt.content,
				Line:    line,
				Column:  column + 1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Scope)
		})
	}
}
