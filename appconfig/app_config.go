package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	DocumentsDir string `env:"DOCUMENTS-DIR" ini:"documents_dir"`
	IndicesDir   string `env:"INDICES-DIR" ini:"indices_dir"`
	LLMProvider  string `env:"LLM-PROVIDER" ini:"llm_provider"`
	SummaryModel string `env:"SUMMARY-MODEL" ini:"summary_model"`

	BatchSize      int `ini:"batch_size"`
	MaxKeywords    int `ini:"max_keywords"`
	SummaryWorkers int `ini:"summary_workers"`
}
