package cnn_dailymail

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jdkato/prose/v2"
)

// CorpusStats aggregates article and summary shape over a sample of parsed
// examples. Sentence boundaries come from the prose segmenter rather than
// the raw line structure, so run-on fixes show up in the counts.
type CorpusStats struct {
	Examples         int
	StoryWords       int
	StorySentences   int
	SummaryWords     int
	SummarySentences int
}

// AnalyzeExamples
// Consumes up to limit examples from the iterator, or all of them when
// limit is not positive, and gathers corpus statistics.
func AnalyzeExamples(nextExample ExampleIterator, limit int) (*CorpusStats,
	error) {
	stats := &CorpusStats{}
	for limit <= 0 || stats.Examples < limit {
		blob := nextExample()
		if blob == nil {
			break
		}
		story, summary, splitErr := StorySummarySplit(*blob)
		if splitErr != nil {
			continue
		}
		storySentences, sentenceErr := countSentences(story)
		if sentenceErr != nil {
			return nil, sentenceErr
		}
		summarySentences, sentenceErr := countSentences(summary)
		if sentenceErr != nil {
			return nil, sentenceErr
		}
		stats.Examples++
		stats.StoryWords += len(strings.Fields(story))
		stats.StorySentences += storySentences
		stats.SummaryWords += len(strings.Fields(summary))
		stats.SummarySentences += summarySentences
	}
	return stats, nil
}

func countSentences(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	doc, docErr := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false))
	if docErr != nil {
		return 0, docErr
	}
	return len(doc.Sentences()), nil
}

func (stats *CorpusStats) String() string {
	if stats.Examples == 0 {
		return "no examples"
	}
	mean := func(total int) float64 {
		return float64(total) / float64(stats.Examples)
	}
	return fmt.Sprintf("%s examples; articles: %s words, %s sentences "+
		"(mean %.1f words, %.1f sentences); summaries: %s words, "+
		"%s sentences (mean %.1f words, %.1f sentences)",
		humanize.Comma(int64(stats.Examples)),
		humanize.Comma(int64(stats.StoryWords)),
		humanize.Comma(int64(stats.StorySentences)),
		mean(stats.StoryWords), mean(stats.StorySentences),
		humanize.Comma(int64(stats.SummaryWords)),
		humanize.Comma(int64(stats.SummarySentences)),
		mean(stats.SummaryWords), mean(stats.SummarySentences))
}
