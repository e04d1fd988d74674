package ports

// Limits bounds the pipeline's concurrency and in-flight memory.
type Limits struct {
	// FlowLimit caps the number of in-flight items per inter-stage channel.
	FlowLimit int `yaml:"flow_limit"`
	// ExtractWorkers is the number of parallel sentence-extraction workers.
	ExtractWorkers int `yaml:"extract_workers"`
	// MaxBatchSize is the number of records handed to the sink per write.
	MaxBatchSize int `yaml:"max_batch_size"`
}
