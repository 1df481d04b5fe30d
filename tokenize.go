package cnn_dailymail

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// SubwordEncoder maps text onto ids in a fixed subword vocabulary.
type SubwordEncoder interface {
	Encode(text string) []int
	EOSID() int
}

// Decoder is implemented by encoders that can also map ids back to text.
type Decoder interface {
	Decode(ids []int) string
}

// ExamplePair is one encoded example: the article ids and the summary ids,
// each terminated by the encoder's end of sequence id.
type ExamplePair struct {
	Inputs  []int
	Targets []int
}

// PairIterator produces one encoded example per call, returning nil once
// the stream is exhausted.
type PairIterator func() *ExamplePair

// StorySummarySplit
// Splits an example blob at the first summary separator, returning the
// article text and the summary text. A blob without the separator is
// malformed.
func StorySummarySplit(blob string) (story string, summary string,
	err error) {
	splitPos := strings.Index(blob, SummarySeparator)
	if splitPos < 0 {
		return "", "", errors.New(fmt.Sprintf(
			"example has no %q separator", SummarySeparator))
	}
	return blob[:splitPos], blob[splitPos+len(SummarySeparator):], nil
}

// TokenizeExamples
// Wraps an example iterator with the encoder, yielding encoded
// (inputs, targets) pairs in source order. Malformed examples are logged
// and skipped.
func TokenizeExamples(nextExample ExampleIterator,
	encoder SubwordEncoder) PairIterator {
	return func() *ExamplePair {
		for {
			blob := nextExample()
			if blob == nil {
				return nil
			}
			story, summary, splitErr := StorySummarySplit(*blob)
			if splitErr != nil {
				log.Printf("Skipping malformed example: %s", splitErr)
				continue
			}
			eosId := encoder.EOSID()
			return &ExamplePair{
				Inputs:  append(encoder.Encode(story), eosId),
				Targets: append(encoder.Encode(summary), eosId),
			}
		}
	}
}
