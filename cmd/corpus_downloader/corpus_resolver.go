package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/wbrown/cnn_dailymail/corpus"
)

func main() {
	tmpDir := flag.String("tmp_dir", "./tmp",
		"where to download and extract the corpora")
	splitFlag := flag.String("split", "train",
		"split manifest to fetch [train, dev]")
	flag.Parse()
	if *splitFlag != "train" && *splitFlag != "dev" {
		flag.Usage()
		log.Fatal("Invalid -split, must be train or dev")
	}

	if dotErr := godotenv.Load(); dotErr != nil {
		log.Print("No .env file found, using environment as is")
	}

	if mkErr := os.MkdirAll(*tmpDir, 0755); mkErr != nil {
		log.Fatal(mkErr)
	}
	srcs, srcErr := corpus.DefaultSources()
	if srcErr != nil {
		log.Fatal(srcErr)
	}
	storyPaths, manifestPath, dlErr := srcs.MaybeDownloadCorpora(*tmpDir,
		*splitFlag == "train")
	if dlErr != nil {
		log.Fatal(dlErr)
	}
	log.Printf("%d story files ready, split manifest at %s",
		len(storyPaths), manifestPath)
}
