package pipeline

import (
	"sort"

	"go.uber.org/zap"

	"github.com/alnah/go-nbdash/internal/notebook"
)

// Stats counts what the extractor produced and what it skipped.
type Stats struct {
	Cells         int // cells loaded
	SkippedCells  int // cell entries that could not be loaded
	TextBlocks    int
	ImageBlocks   int
	EmptyText     int // markdown cells with no renderable text
	SkippedImages int // image payloads that failed validation
}

// Extractor walks notebook cells and produces content blocks in order.
type Extractor struct {
	markdown *MarkdownConverter
	log      *zap.Logger
}

// NewExtractor creates an Extractor.
// If log is nil, skipped items are counted but not logged.
func NewExtractor(md *MarkdownConverter, log *zap.Logger) *Extractor {
	if md == nil {
		md = NewMarkdownConverter(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{markdown: md, log: log}
}

// Extract returns one TextBlock per markdown cell with renderable text and
// one ImageBlock per valid image payload in code cell outputs, in document
// order. Non-image outputs and other cell kinds are ignored.
func (e *Extractor) Extract(nb *notebook.Notebook) ([]Block, Stats) {
	stats := Stats{Cells: len(nb.Cells), SkippedCells: nb.Skipped}
	var blocks []Block

	for _, cell := range nb.Cells {
		switch cell.Kind {
		case notebook.KindMarkdown:
			fragment, headings := e.markdown.Convert(cell.Text())
			if fragment == "" {
				stats.EmptyText++
				continue
			}
			blocks = append(blocks, TextBlock{Cell: cell.Index, HTML: fragment, Headings: headings})
			stats.TextBlocks++

		case notebook.KindCode:
			for _, out := range cell.Outputs {
				if !out.HasRichData() {
					continue
				}
				for _, img := range imagePayloads(out.Data) {
					block, err := normalizeImage(cell.Index, img.mime, img.payload)
					if err != nil {
						stats.SkippedImages++
						e.log.Debug("skipping image output",
							zap.Int("cell", cell.Index),
							zap.String("mime", img.mime),
							zap.Error(err))
						continue
					}
					blocks = append(blocks, block)
					stats.ImageBlocks++
				}
			}
		}
	}

	return blocks, stats
}

// imagePayload is one image entry of a MIME bundle.
type imagePayload struct {
	mime    string
	payload string
}

// imagePayloads returns the image entries of a bundle in imageMIMETypes order.
// When several keys normalize to the same MIME type, the canonical key wins,
// then the lexically smallest alias, so the choice is deterministic.
func imagePayloads(data map[string]string) []imagePayload {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byMIME := make(map[string]string)
	for _, k := range keys {
		mime := normalizeMIME(k)
		if _, seen := byMIME[mime]; seen && k != mime {
			continue
		}
		byMIME[mime] = data[k]
	}

	var out []imagePayload
	for _, mime := range imageMIMETypes {
		if payload, ok := byMIME[mime]; ok {
			out = append(out, imagePayload{mime: mime, payload: payload})
		}
	}
	return out
}
