package cnn_dailymail

import (
	"errors"
	"fmt"
	"log"

	"github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
	"github.com/wbrown/gpt_bpe"
)

// PretrainedEncoder adapts a ready made BPE tokenizer. The wrapped
// vocabulary is fixed, so the targeted size in the problem metadata does
// not apply to it.
type PretrainedEncoder struct {
	encoder *gpt_bpe.GPTEncoder
}

// NewPretrainedEncoder
// Resolves a tokenizer id such as `gpt2`, `pile`, or a huggingface model
// id into an encoder.
func NewPretrainedEncoder(tokenizerId string) (*PretrainedEncoder, error) {
	encoder, encErr := gpt_bpe.NewEncoder(tokenizerId)
	if encErr != nil {
		return nil, encErr
	}
	return &PretrainedEncoder{encoder: encoder}, nil
}

func (pe *PretrainedEncoder) Encode(text string) []int {
	tokens := pe.encoder.Encode(&text)
	ids := make([]int, 0, len(*tokens))
	for _, token := range *tokens {
		ids = append(ids, int(token))
	}
	return ids
}

func (pe *PretrainedEncoder) EOSID() int {
	return int(pe.encoder.EosToken)
}

func (pe *PretrainedEncoder) Decode(ids []int) string {
	tokens := make(gpt_bpe.Tokens, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, gpt_bpe.Token(id))
	}
	return pe.encoder.Decode(&tokens)
}

// PretrainedVocab satisfies VocabBuilder with a fixed pretrained
// tokenizer. The vocabulary file and the corpus scan are both bypassed.
type PretrainedVocab struct {
	TokenizerId string
}

func (pv PretrainedVocab) LoadVocab(vocabPath string) (SubwordEncoder,
	error) {
	return NewPretrainedEncoder(pv.TokenizerId)
}

func (pv PretrainedVocab) BuildVocab(vocabPath string, targetSize int,
	nextExample ExampleIterator) (SubwordEncoder, error) {
	log.Printf("Using pretrained tokenizer %s", pv.TokenizerId)
	return NewPretrainedEncoder(pv.TokenizerId)
}

// spmEOSID is the end of sequence id sentencepiece models reserve by
// default: 0 is <unk>, 1 is <s>, 2 is </s>.
const spmEOSID = 2

// SentencePieceEncoder adapts an externally trained sentencepiece model.
type SentencePieceEncoder struct {
	model sentencepiece.Sentencepiece
	eosId int
}

// NewSentencePieceEncoder loads a serialized sentencepiece model.
func NewSentencePieceEncoder(modelPath string) (*SentencePieceEncoder,
	error) {
	model, spErr := sentencepiece.NewSentencepieceFromFile(modelPath, false)
	if spErr != nil {
		return nil, errors.New(fmt.Sprintf(
			"error loading sentencepiece model %s: %s", modelPath, spErr))
	}
	return &SentencePieceEncoder{model: model, eosId: spmEOSID}, nil
}

func (se *SentencePieceEncoder) Encode(text string) []int {
	pieces := se.model.Tokenize(text)
	ids := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		ids = append(ids, int(piece.ID))
	}
	return ids
}

func (se *SentencePieceEncoder) EOSID() int {
	return se.eosId
}

// SentencePieceVocab loads sentencepiece models as subword encoders. With
// ModelPath set it always loads that file; otherwise it loads the resolved
// vocabulary file. Inducing a new model in process is not supported.
type SentencePieceVocab struct {
	ModelPath string
}

func (sv SentencePieceVocab) LoadVocab(vocabPath string) (SubwordEncoder,
	error) {
	if sv.ModelPath != "" {
		vocabPath = sv.ModelPath
	}
	return NewSentencePieceEncoder(vocabPath)
}

func (sv SentencePieceVocab) BuildVocab(vocabPath string, targetSize int,
	nextExample ExampleIterator) (SubwordEncoder, error) {
	if sv.ModelPath != "" {
		return NewSentencePieceEncoder(sv.ModelPath)
	}
	return nil, errors.New(fmt.Sprintf(
		"no vocabulary at %s: train a %d piece sentencepiece model "+
			"externally and place it there", vocabPath, targetSize))
}
