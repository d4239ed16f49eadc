package indexer

// Page is one unit of source text, numbered from 1 with no gaps.
type Page struct {
	Number int
	Text   string
}

// Batch is a contiguous, order-preserving group of pages summarized as a unit.
type Batch []Page

// Section is the index entry produced for one batch.
type Section struct {
	SectionID int      `json:"section_id"`
	Title     string   `json:"title"`
	Pages     []int    `json:"pages"`
	PageRange string   `json:"page_range"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
}

// DocumentMetadata holds identity fields inferred from page text and the
// source path. Fields the heuristics could not resolve stay nil and
// serialize as JSON null.
type DocumentMetadata struct {
	ProcedureCode *string `json:"procedure_code"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Version       *string `json:"version"`
	Date          *string `json:"date"`
	IndexedAt     string  `json:"indexed_at"`
}

// Index is the persisted aggregate, one JSON file per source document.
// Field names and nesting are parsed by the retrieval agent downstream,
// so they are load-bearing.
type Index struct {
	DocumentID string           `json:"document_id"`
	Title      string           `json:"title"`
	Category   string           `json:"category"`
	SourceFile string           `json:"source_file"`
	TotalPages int              `json:"total_pages"`
	Summary    string           `json:"summary"`
	Metadata   DocumentMetadata `json:"metadata"`
	Sections   []Section        `json:"sections"`
}

// Synopsis is what summarization yields for one batch before it is placed
// into its Section slot. Title and Keywords may be empty when the service
// response omitted them; the caller fills them from local heuristics.
type Synopsis struct {
	Title    string
	Summary  string
	Keywords []string
}
