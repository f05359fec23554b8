package viewmodel

import (
	"testing"

	"anoa.com/socialfeed/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRenderContent(t *testing.T) {
	tests := []struct {
		name    string
		content entity.PostContent
		want    ContentBlock
	}{
		{
			name:    "image with caption",
			content: entity.PostContent{Type: entity.ContentImage, ImageURL: "https://img.test/a.jpg", ImageAlt: "facade", Text: "ignored"},
			want:    ContentBlock{Kind: BlockImage, ImageURL: "https://img.test/a.jpg", Caption: "facade"},
		},
		{
			name:    "image without caption",
			content: entity.PostContent{Type: entity.ContentImage, ImageURL: "https://img.test/b.jpg"},
			want:    ContentBlock{Kind: BlockImage, ImageURL: "https://img.test/b.jpg"},
		},
		{
			name:    "text",
			content: entity.PostContent{Type: entity.ContentText, Text: "hello", ImageURL: "ignored"},
			want:    ContentBlock{Kind: BlockParagraph, Text: "hello"},
		},
		{
			name:    "quote is framed",
			content: entity.PostContent{Type: entity.ContentQuote, Text: "form follows function"},
			want:    ContentBlock{Kind: BlockQuote, Text: "form follows function", Framed: true},
		},
		{
			name:    "unknown tag renders nothing",
			content: entity.PostContent{Type: "video", Text: "x", ImageURL: "y"},
			want:    ContentBlock{Kind: BlockEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderContent(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind == BlockEmpty, got.IsEmpty())
		})
	}
}
