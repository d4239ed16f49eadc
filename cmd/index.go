package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bdiaz22/agente/appconfig"
	"github.com/bdiaz22/agente/indexer"
	"github.com/bdiaz22/agente/llm"
)

var supportedExtensions = map[string]struct{}{
	".pdf": {}, ".md": {}, ".txt": {},
}

var (
	batchSize   int
	concurrency int
	maxKeywords int
	outputDir   string
	provider    string
	model       string
	reindex     bool
)

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Index procedure documents into JSON indices",
	Long: `Index the given documents (or every supported document under the
configured documents directory when no paths are given). Documents whose
index file already exists are skipped unless --reindex is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dotenv.LoadEnv()

		ccfg := &appconfig.AppConfig{}
		if err := config.LoadConfig("config.ini", ccfg); err != nil {
			logger.Log.Warn("No config.ini loaded, using flags and defaults", zap.Error(err))
		}
		applyConfig(cmd, ccfg)

		sources, err := collectSources(args, ccfg.DocumentsDir)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return fmt.Errorf("no documents found to index")
		}

		client, err := buildLLMClient()
		if err != nil {
			return err
		}

		ix := indexer.New(
			indexer.NewResilient(indexer.NewLLMSummarizer(client, model), maxKeywords),
			indexer.Options{
				BatchSize:   batchSize,
				Concurrency: concurrency,
				OutputDir:   outputDir,
			})

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		start := time.Now()
		var indexed, skipped, failed int

		for _, source := range sources {
			if !reindex && alreadyIndexed(source, outputDir) {
				printSkipped(source)
				skipped++
				continue
			}

			idx, err := ix.IndexDocument(ctx, source)
			if err != nil {
				if ctx.Err() != nil {
					return fmt.Errorf("indexing cancelled: %w", ctx.Err())
				}
				logger.Error("Failed to index document", zap.String("source", source), zap.Error(err))
				printFailed(source, err)
				failed++
				continue
			}

			printIndexed(idx.DocumentID, source, len(idx.Sections))
			indexed++
		}

		printRunSummary(indexed, skipped, failed, time.Since(start))

		if failed > 0 {
			return fmt.Errorf("%d document(s) failed to index", failed)
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().IntVarP(&batchSize, "batch-size", "b", indexer.DefaultBatchSize, "Pages per summarization batch")
	indexCmd.Flags().IntVar(&concurrency, "concurrency", indexer.DefaultConcurrency, "Maximum in-flight summarization requests")
	indexCmd.Flags().IntVar(&maxKeywords, "max-keywords", indexer.DefaultMaxKeywords, "Maximum keywords per section")
	indexCmd.Flags().StringVarP(&outputDir, "output", "o", indexer.DefaultOutputDir, "Directory for generated index files")
	indexCmd.Flags().StringVar(&provider, "provider", "anthropic", "LLM provider (anthropic, ollama)")
	indexCmd.Flags().StringVar(&model, "model", "claude-3-5-haiku-20241022", "Model used for summarization")
	indexCmd.Flags().BoolVar(&reindex, "reindex", false, "Regenerate indices that already exist")

	rootCmd.AddCommand(indexCmd)
}

// applyConfig fills in flag values the user did not override from config.ini.
// The command comes in as a parameter so this never touches indexCmd during
// its own initialization.
func applyConfig(cmd *cobra.Command, ccfg *appconfig.AppConfig) {
	flags := cmd.Flags()
	if !flags.Changed("batch-size") && ccfg.BatchSize > 0 {
		batchSize = ccfg.BatchSize
	}
	if !flags.Changed("concurrency") && ccfg.SummaryWorkers > 0 {
		concurrency = ccfg.SummaryWorkers
	}
	if !flags.Changed("max-keywords") && ccfg.MaxKeywords > 0 {
		maxKeywords = ccfg.MaxKeywords
	}
	if !flags.Changed("output") && ccfg.IndicesDir != "" {
		outputDir = ccfg.IndicesDir
	}
	if !flags.Changed("provider") && ccfg.LLMProvider != "" {
		provider = ccfg.LLMProvider
	}
	if !flags.Changed("model") && ccfg.SummaryModel != "" {
		model = ccfg.SummaryModel
	}
	if ccfg.DocumentsDir == "" {
		ccfg.DocumentsDir = "data/documentos"
	}
}

func buildLLMClient() (llm.LLMClient, error) {
	switch provider {
	case "anthropic":
		return llm.NewAnthropicClient(model), nil
	case "ollama":
		return llm.NewOllamaClient(model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}

// collectSources resolves the documents to index: explicit paths when given,
// else every supported file under the documents directory.
func collectSources(args []string, documentsDir string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var sources []string
	err := filepath.WalkDir(documentsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", documentsDir, err)
	}

	sort.Strings(sources)
	return sources, nil
}

// alreadyIndexed derives the document id the same way the pipeline does
// (filename only, pages not loaded yet) and checks for its index file.
func alreadyIndexed(source, outputDir string) bool {
	id := indexer.DeriveDocumentID(indexer.ExtractMetadata(nil, source), source)
	_, err := os.Stat(filepath.Join(outputDir, id+".json"))
	return err == nil
}
