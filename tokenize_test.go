package cnn_dailymail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wordLenEncoder maps every word onto its byte length. Deterministic and
// vocabulary free, for exercising the pipeline without a real tokenizer.
type wordLenEncoder struct{}

func (wordLenEncoder) Encode(text string) []int {
	ids := make([]int, 0)
	for _, word := range strings.Fields(text) {
		ids = append(ids, len(word))
	}
	return ids
}

func (wordLenEncoder) EOSID() int {
	return 1
}

func sliceExamples(blobs []string) ExampleIterator {
	idx := 0
	return func() *string {
		if idx >= len(blobs) {
			return nil
		}
		blob := blobs[idx]
		idx++
		return &blob
	}
}

func TestTokenizeExamples(t *testing.T) {
	blobs := []string{
		"one two" + SummarySeparator + "three",
		"malformed with no separator",
		"four" + SummarySeparator + "five six",
	}
	nextPair := TokenizeExamples(sliceExamples(blobs), wordLenEncoder{})

	pair := nextPair()
	assert.NotNil(t, pair)
	assert.Equal(t, []int{3, 3, 1}, pair.Inputs)
	assert.Equal(t, []int{5, 1}, pair.Targets)

	// The malformed blob is skipped, not yielded.
	pair = nextPair()
	assert.NotNil(t, pair)
	assert.Equal(t, []int{4, 1}, pair.Inputs)
	assert.Equal(t, []int{4, 3, 1}, pair.Targets)

	assert.Nil(t, nextPair())
}

func TestTokenizeExamplesEmptySummary(t *testing.T) {
	blobs := []string{"article only." + SummarySeparator}
	nextPair := TokenizeExamples(sliceExamples(blobs), wordLenEncoder{})
	pair := nextPair()
	assert.NotNil(t, pair)
	assert.Equal(t, []int{7, 5, 1}, pair.Inputs)
	assert.Equal(t, []int{1}, pair.Targets)
	assert.Nil(t, nextPair())
}
