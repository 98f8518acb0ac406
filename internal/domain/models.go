package domain

// SourceFile is a byte-addressable input document handed to the ingestion
// pipeline: a name plus the raw content to be chunked and embedded.
type SourceFile struct {
	Name    string
	Content []byte
}

// Document identifies an ingested source by its content digest. Identity is
// the digest, not the filename: two files with identical bytes under
// different names are the same Document.
type Document struct {
	Name   string
	Digest string
}

// Chunk is a bounded passage of a source document, the unit of embedding
// and retrieval. Seq is contiguous from 0 so ordering is reconstructable.
type Chunk struct {
	DocumentName   string
	DocumentDigest string
	Seq            int
	Text           string
}

// VectorDoc is the unit stored in a vector collection: a stable key, the
// embedding, and flat string fields carried alongside it.
type VectorDoc struct {
	Key    string
	Vector []float64
	Fields map[string]string
}

// SearchHit is a single match from a similarity search. Score is cosine
// similarity in [0, 1], higher is closer.
type SearchHit struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// Stored field names for chunk and response-cache documents.
const (
	FieldText     = "text"
	FieldFileName = "fileName"
	FieldFileHash = "fileHash"
	FieldSeq      = "seq"
	FieldLLM      = "llm"
	FieldResponse = "response"
)

// IndexStatus is the lifecycle state of a vector-search index.
type IndexStatus string

const (
	IndexAbsent   IndexStatus = "ABSENT"
	IndexBuilding IndexStatus = "BUILDING"
	IndexReady    IndexStatus = "READY"
)

// IndexDescriptor describes the similarity-search index over one collection.
type IndexDescriptor struct {
	Collection string
	Dimensions int
	Status     IndexStatus
}

// IngestionFailure records one document the pipeline could not process,
// with the underlying cause preserved verbatim.
type IngestionFailure struct {
	Name string
	Err  error
}

// IngestionReport aggregates the outcome of one ingestion batch.
type IngestionReport struct {
	Processed []string
	Skipped   []string
	Failed    []IngestionFailure
}

// AnswerResult holds both responses produced for one question. The
// ungrounded answer is the baseline for measuring the effect of retrieval.
// Ephemeral, never persisted.
type AnswerResult struct {
	Grounded   string   `json:"grounded"`
	Ungrounded string   `json:"ungrounded"`
	Sources    []string `json:"sources,omitempty"`
}
