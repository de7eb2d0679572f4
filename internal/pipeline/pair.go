package pipeline

// Unit is a display unit: an optional text block and the images that
// follow it in the document.
type Unit struct {
	Text   *TextBlock // nil when the unit starts with images
	Images []ImageBlock
}

// Blocks returns the unit's blocks in document order.
func (u Unit) Blocks() []Block {
	blocks := make([]Block, 0, len(u.Images)+1)
	if u.Text != nil {
		blocks = append(blocks, *u.Text)
	}
	for _, img := range u.Images {
		blocks = append(blocks, img)
	}
	return blocks
}

// Pair groups blocks into display units in a single pass.
//
// Every TextBlock opens a new unit; the ImageBlocks that follow it, up to
// the next TextBlock, attach to that unit. Images with no text before them
// open a unit with an empty text part.
//
// The grouping assumes that a plot placed right after a piece of narrative
// illustrates it. Notebooks do not guarantee this; it is a presentation
// heuristic, not a statement about the content.
//
// The units partition the input: every block lands in exactly one unit and
// order is preserved.
func Pair(blocks []Block) []Unit {
	var units []Unit

	for _, b := range blocks {
		switch b := b.(type) {
		case TextBlock:
			text := b
			units = append(units, Unit{Text: &text})
		case ImageBlock:
			if len(units) == 0 {
				units = append(units, Unit{})
			}
			last := &units[len(units)-1]
			last.Images = append(last.Images, b)
		}
	}

	return units
}
