package document

import (
	"strings"

	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
)

// BlockKind classifies one renderable block of the narrative.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockParagraph
	BlockSpacer
)

// Block is one renderable unit produced by the line classifier.
type Block struct {
	Kind BlockKind
	Text string
}

// ClassifyLines splits a narrative into renderable blocks with a three-way
// line classifier: heading-marked lines become headings, bullet-marked lines
// become bulleted items, all other non-empty lines become paragraphs. Blank
// lines are preserved as spacing. The markers come from the plan package so
// the synthesis prompt and the renderer stay contractually in sync.
//
// The classifier is line-oriented and stateless; it knows prefix syntax,
// never section semantics.
func ClassifyLines(narrative string) []Block {
	lines := strings.Split(narrative, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			blocks = append(blocks, Block{Kind: BlockSpacer})
			continue
		}

		if heading, ok := stripHeading(trimmed); ok {
			blocks = append(blocks, Block{Kind: BlockHeading, Text: heading})
			continue
		}

		if bullet, ok := stripBullet(trimmed); ok {
			blocks = append(blocks, Block{Kind: BlockBullet, Text: bullet})
			continue
		}

		blocks = append(blocks, Block{Kind: BlockParagraph, Text: trimmed})
	}

	return blocks
}

// stripHeading removes a heading marker prefix, longest marker first so
// "##" is not misread as "#" plus text.
func stripHeading(line string) (string, bool) {
	for _, marker := range []string{plan.HeadingMarker, plan.SubHeadingMarker} {
		if strings.HasPrefix(line, marker) {
			rest := strings.TrimLeft(line, "#")
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// stripBullet removes a bullet marker prefix. A bare marker with no
// following space is not a bullet (e.g. "-5 degrees").
func stripBullet(line string) (string, bool) {
	for _, marker := range plan.BulletMarkers {
		if strings.HasPrefix(line, marker+" ") {
			return strings.TrimSpace(strings.TrimPrefix(line, marker+" ")), true
		}
		if line == marker {
			return "", true
		}
	}
	return "", false
}
