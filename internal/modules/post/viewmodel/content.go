package viewmodel

import "anoa.com/socialfeed/internal/entity"

type BlockKind string

const (
	BlockEmpty     BlockKind = ""
	BlockImage     BlockKind = "image"
	BlockParagraph BlockKind = "paragraph"
	BlockQuote     BlockKind = "quote"
)

// ContentBlock is the render instruction for a post body.
type ContentBlock struct {
	Kind     BlockKind `json:"kind"`
	Text     string    `json:"text,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Caption  string    `json:"caption,omitempty"`
	// Framed asks the client for the quote border and indent.
	Framed bool `json:"framed"`
}

// RenderContent dispatches on the content tag. Unknown tags render nothing.
func RenderContent(content entity.PostContent) ContentBlock {
	switch content.Type {
	case entity.ContentImage:
		return ContentBlock{
			Kind:     BlockImage,
			ImageURL: content.ImageURL,
			Caption:  content.ImageAlt,
		}
	case entity.ContentText:
		return ContentBlock{
			Kind: BlockParagraph,
			Text: content.Text,
		}
	case entity.ContentQuote:
		return ContentBlock{
			Kind:   BlockQuote,
			Text:   content.Text,
			Framed: true,
		}
	default:
		return ContentBlock{Kind: BlockEmpty}
	}
}

// IsEmpty reports whether the block renders nothing.
func (b ContentBlock) IsEmpty() bool {
	return b.Kind == BlockEmpty
}
