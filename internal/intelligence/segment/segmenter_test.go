package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	in := "The  “Provider”\n\tshall   deliver.\r\n"
	assert.Equal(t, `The "Provider" shall deliver.`, NormalizeText(in))
}

func TestSplitSentencesTracksOffsets(t *testing.T) {
	text := "First sentence here. Second one follows! Third?"
	sentences, offsets := SplitSentences(text)

	require.Equal(t, []string{"First sentence here.", "Second one follows!", "Third?"}, sentences)
	require.Len(t, offsets, 3)
	for i, s := range sentences {
		assert.True(t, strings.HasPrefix(text[offsets[i]:], s),
			"offset %d does not point at sentence %q", offsets[i], s)
	}
}

func TestSegmentEmitsLegalSentences(t *testing.T) {
	text := NormalizeText(`
		Either party may terminate this agreement with 30 days written notice.
		The weather was lovely on the day the document was printed out nicely.
		Client shall pay all fees within fifteen days of receiving the invoice.
	`)

	candidates := Segment(text)
	require.Len(t, candidates, 2)
	assert.Contains(t, candidates[0].Text, "terminate")
	assert.Contains(t, candidates[1].Text, "shall pay")
	for _, c := range candidates {
		assert.True(t, strings.HasPrefix(text[c.SourceOffset:], c.Text))
	}
}

func TestSegmentDropsShortAndLongSpans(t *testing.T) {
	short := "Party shall pay."
	long := "The party shall agree that " + strings.Repeat("liability obligations persist and ", 20) + "payment is due."
	text := NormalizeText(short + " " + long)

	assert.Empty(t, Segment(text))
}

func TestSegmentRequiresTwoSignalTokens(t *testing.T) {
	// Long enough, but only one legal-signal stem ("payment").
	text := "The payment was recorded in the accounting system yesterday evening."
	assert.Empty(t, Segment(text))
}
