package cnn_dailymail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeExamples(t *testing.T) {
	blobs := []string{
		"The cat sat on the mat. The dog barked." + SummarySeparator +
			"Cat sits. Dog barks.",
		"One short article." + SummarySeparator + "One highlight.",
	}
	stats, err := AnalyzeExamples(sliceExamples(blobs), 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Examples)
	assert.Equal(t, 12, stats.StoryWords)
	assert.Equal(t, 3, stats.StorySentences)
	assert.Equal(t, 6, stats.SummaryWords)
	assert.Equal(t, 3, stats.SummarySentences)
	assert.Contains(t, stats.String(), "2 examples")
}

func TestAnalyzeExamplesLimit(t *testing.T) {
	blobs := []string{
		"First one." + SummarySeparator + "First.",
		"Second one." + SummarySeparator + "Second.",
	}
	stats, err := AnalyzeExamples(sliceExamples(blobs), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Examples)
	assert.Equal(t, 2, stats.StoryWords)
}

func TestCorpusStatsEmpty(t *testing.T) {
	stats, err := AnalyzeExamples(sliceExamples(nil), 0)
	assert.NoError(t, err)
	assert.Equal(t, "no examples", stats.String())
}
