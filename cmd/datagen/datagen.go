package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/wbrown/cnn_dailymail"
	"github.com/wbrown/cnn_dailymail/tfrecord"
)

func main() {
	problemId := flag.String("problem", "summarize_cnn_dailymail32k",
		"problem to generate ["+
			strings.Join(cnn_dailymail.ProblemNames(), ", ")+"]")
	dataDir := flag.String("data_dir", "./data",
		"directory for the vocabulary and the generated shards")
	tmpDir := flag.String("tmp_dir", "./tmp",
		"scratch directory for downloaded archives and extracted "+
			"stories")
	splitFlag := flag.String("split", "train",
		"split to generate [train, dev]")
	tokenizerId := flag.String("tokenizer", "",
		"pretrained tokenizer to encode with [gpt2, pile, "+
			"huggingface-id]")
	spmModel := flag.String("spm_model", "",
		"sentencepiece model file to encode with")
	numShards := flag.Int("num_shards", 0,
		"number of shard files to write, 0 for the problem default")
	statsLimit := flag.Int("stats", 0,
		"report corpus statistics over the first N parsed examples "+
			"and exit, -1 for the whole split")
	showExamples := flag.Int("show_examples", 0,
		"log the first N encoded examples as they are written")
	flag.Parse()

	if *splitFlag != "train" && *splitFlag != "dev" {
		flag.Usage()
		log.Fatal("Invalid -split, must be train or dev")
	}
	if *tokenizerId != "" && *spmModel != "" {
		flag.Usage()
		log.Fatal("Provide -tokenizer or -spm_model, not both")
	}
	train := *splitFlag == "train"

	if dotErr := godotenv.Load(); dotErr != nil {
		log.Print("No .env file found, using environment as is")
	}

	problem, problemErr := cnn_dailymail.LookupProblem(*problemId)
	if problemErr != nil {
		log.Fatal(problemErr)
	}
	shards := problem.NumShards
	if !train {
		shards = 1
	}
	if *numShards > 0 {
		shards = *numShards
	}

	log.Printf("Problem: %s\n", problem.Name)
	log.Printf("Split: %s\n", cnn_dailymail.SplitName(train))
	log.Printf("Data directory: %s\n", *dataDir)
	log.Printf("Scratch directory: %s\n", *tmpDir)

	if mkErr := os.MkdirAll(*dataDir, 0755); mkErr != nil {
		log.Fatal(mkErr)
	}
	if mkErr := os.MkdirAll(*tmpDir, 0755); mkErr != nil {
		log.Fatal(mkErr)
	}

	if *statsLimit != 0 {
		set, openErr := cnn_dailymail.OpenStorySet(*tmpDir, train)
		if openErr != nil {
			log.Fatal(openErr)
		}
		stats, statsErr := cnn_dailymail.AnalyzeExamples(set.Examples(),
			*statsLimit)
		if statsErr != nil {
			log.Fatal(statsErr)
		}
		log.Print(stats)
		return
	}

	var builder cnn_dailymail.VocabBuilder
	if *tokenizerId != "" {
		builder = cnn_dailymail.PretrainedVocab{TokenizerId: *tokenizerId}
	} else {
		builder = cnn_dailymail.SentencePieceVocab{ModelPath: *spmModel}
	}

	begin := time.Now()
	pairs, encoder, genErr := problem.Generate(*dataDir, *tmpDir, train,
		builder)
	if genErr != nil {
		log.Fatal(genErr)
	}

	numTokens := 0
	shown := 0
	nextRecord := func() []byte {
		pair := pairs()
		if pair == nil {
			return nil
		}
		numTokens += len(pair.Inputs) + len(pair.Targets)
		if shown < *showExamples {
			shown++
			if decoder, ok := encoder.(cnn_dailymail.Decoder); ok {
				log.Printf("inputs: %s", decoder.Decode(pair.Inputs))
				log.Printf("targets: %s", decoder.Decode(pair.Targets))
			} else {
				log.Printf("inputs: %v", pair.Inputs)
				log.Printf("targets: %v", pair.Targets)
			}
		}
		return tfrecord.EncodeExample(pair.Inputs, pair.Targets)
	}
	shardPaths := tfrecord.ShardedPaths(*dataDir, problem.Name,
		cnn_dailymail.SplitName(train), shards)
	total, writeErr := tfrecord.WriteShards(shardPaths, nextRecord)
	if writeErr != nil {
		log.Fatal(writeErr)
	}
	duration := time.Now().Sub(begin).Seconds()
	log.Printf("%d examples (%s tokens) in %0.2fs, %0.2f examples/s",
		total, humanize.Comma(int64(numTokens)), duration,
		float64(total)/duration)
}
