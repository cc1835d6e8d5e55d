package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLines(t *testing.T) {
	narrative := "## Overview\nA relaxed long weekend.\n\n- pack light\n* bring an adapter\n• charge your phone\n# Notes\n-5 degrees at night\n"

	blocks := ClassifyLines(narrative)

	require.Len(t, blocks, 9)
	assert.Equal(t, Block{Kind: BlockHeading, Text: "Overview"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "A relaxed long weekend."}, blocks[1])
	assert.Equal(t, Block{Kind: BlockSpacer}, blocks[2])
	assert.Equal(t, Block{Kind: BlockBullet, Text: "pack light"}, blocks[3])
	assert.Equal(t, Block{Kind: BlockBullet, Text: "bring an adapter"}, blocks[4])
	assert.Equal(t, Block{Kind: BlockBullet, Text: "charge your phone"}, blocks[5])
	assert.Equal(t, Block{Kind: BlockHeading, Text: "Notes"}, blocks[6])
	// a minus sign with no following space is not a bullet
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "-5 degrees at night"}, blocks[7])
	assert.Equal(t, Block{Kind: BlockSpacer}, blocks[8])
}

func TestClassifyLines_EmptyNarrative(t *testing.T) {
	blocks := ClassifyLines("")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockSpacer, blocks[0].Kind)
}

func TestClassifyLines_IndentedMarkers(t *testing.T) {
	blocks := ClassifyLines("   ## Heading\n\t- item")
	require.Len(t, blocks, 2)
	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, BlockBullet, blocks[1].Kind)
}
