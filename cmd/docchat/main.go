package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"docchat/internal/chunker"
	"docchat/internal/config"
	"docchat/internal/domain"
	"docchat/internal/embedding"
	"docchat/internal/extract"
	"docchat/internal/llm"
	"docchat/internal/logger"
	"docchat/internal/session"
	"docchat/internal/summarizer"
	"docchat/internal/tui"
	"docchat/internal/vectorstore/memory"
	"docchat/internal/watcher"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var watch bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docchat/config.yaml if not provided)")
	flag.BoolVar(&watch, "watch", false, "Re-ingest when a source file changes")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: docchat [--config=config.yaml] [--watch] file1.txt [file2.md ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ch, err := chunker.New(cfg.Chunker.ChunkSize, cfg.Chunker.Overlap)
	if err != nil {
		zlog.Fatal("invalid chunker config", zap.Error(err))
	}

	var answerer domain.Answerer
	switch cfg.LLM.Type {
	case "openai", "":
		answerer, err = llm.NewOpenAI(llm.Config{
			BaseURL:   cfg.LLM.BaseURL,
			APIKeyEnv: cfg.LLM.APIKeyEnv,
			Model:     cfg.LLM.Model,
		})
		if err != nil {
			zlog.Warn("answer generation disabled", zap.Error(err))
			answerer = llm.Unavailable{Reason: err.Error()}
		}
	case "none":
		answerer = llm.Unavailable{Reason: "disabled in config"}
	default:
		zlog.Fatal("unknown llm type", zap.String("type", cfg.LLM.Type))
	}

	sess := session.New(session.Config{
		Chunker:    ch,
		Extractor:  extract.NewPlaintext(),
		Answerer:   answerer,
		Store:      memory.New(),
		Summarizer: summarizer.NewFrequency(),
		VocabOpts: embedding.Options{
			MinDocFreq:  cfg.Vocabulary.MinDocFreq,
			MaxDocRatio: cfg.Vocabulary.MaxDocRatio,
		},
		TopK:       cfg.Retrieval.TopK,
		SummaryLen: cfg.Summarizer.MaxSentences,
		Logger:     zlog,
	})

	ctx := context.Background()
	sources := extract.ResolveSources(inputs)
	report, err := sess.Ingest(ctx, sources)
	if err != nil {
		zlog.Fatal("ingest failed", zap.Error(err))
	}
	if report.Ingested == 0 {
		zlog.Fatal("no documents could be ingested", zap.Int("skipped", report.Skipped))
	}

	if watch {
		w, err := watcher.New(zlog)
		if err != nil {
			zlog.Fatal("failed to create watcher", zap.Error(err))
		}
		defer w.Close()
		go func() {
			err := w.Watch(ctx, sources, func() {
				if err := sess.Reset(); err != nil {
					zlog.Warn("reset before re-ingest failed", zap.Error(err))
					return
				}
				if _, err := sess.Ingest(ctx, extract.ResolveSources(inputs)); err != nil {
					zlog.Warn("re-ingest failed", zap.Error(err))
				}
			})
			if err != nil && ctx.Err() == nil {
				zlog.Warn("watcher stopped", zap.Error(err))
			}
		}()
	}

	m := tui.New(sess, report.Summary)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		zlog.Fatal("tui failed", zap.Error(err))
	}
}
