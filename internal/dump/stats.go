package dump

import (
	"strings"

	"github.com/riverfjs/mmd-go/internal/types"
)

// Stats 文档树的结构统计
type Stats struct {
	Sections   int `json:"sections" yaml:"sections"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
	Lines      int `json:"lines" yaml:"lines"`
	Asides     int `json:"asides" yaml:"asides"`
	Lists      int `json:"lists" yaml:"lists"`
	Blocks     int `json:"blocks" yaml:"blocks"`
	// Words counts non-separator words outside code blocks, titles included.
	Words int `json:"words" yaml:"words"`
}

// Collect walks doc and counts its nodes.
func Collect(doc *types.Document) Stats {
	var s Stats
	s.document(doc)
	return s
}

func (s *Stats) document(d *types.Document) {
	if d.Title != nil {
		s.paragraph(d.Title)
	}
	for _, part := range d.Content {
		switch p := part.(type) {
		case *types.Section:
			s.Sections++
			s.Words += len(strings.Fields(p.Title.Text()))
			s.document(p.Doc)
		case *types.Paragraph:
			s.paragraph(p)
		}
	}
}

func (s *Stats) paragraph(p *types.Paragraph) {
	if p.Empty() {
		return
	}
	s.Paragraphs++
	for _, item := range p.Items {
		switch it := item.(type) {
		case *types.Line:
			s.Lines++
			for _, src := range it.Sources {
				s.Words += len(src.Terms())
			}
		case *types.Aside:
			s.Asides++
			s.document(it.Doc)
		case *types.List:
			s.Lists++
			s.document(it.Doc)
		case *types.Block:
			s.Blocks++
		}
	}
}
