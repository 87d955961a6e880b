package knapsack

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"time"
)

// RunRecord is the saved outcome of one run: its inputs, best solution and
// fitness history. Populations are not part of a record.
type RunRecord struct {
	Label       string
	Capacity    float64
	Config      EvolutionConfig
	Catalog     Catalog
	BestGenes   []uint8
	BestFitness float64
	History     History
	Elapsed     time.Duration
}

// NewRunRecord captures the current outcome of an engine.
func NewRunRecord(label string, e *Engine, elapsed time.Duration) RunRecord {
	best, fitness := e.Best()
	return RunRecord{
		Label:       label,
		Capacity:    e.Capacity,
		Config:      e.Config,
		Catalog:     e.Catalog.Clone(),
		BestGenes:   best.Genes(),
		BestFitness: fitness,
		History:     e.History(),
		Elapsed:     elapsed,
	}
}

// Best returns the recorded best solution as a genome.
func (r RunRecord) Best() Genome {
	return GenomeFromGenes(r.BestGenes)
}

// SaveRecord writes a run record to a gzip-compressed gob file.
func SaveRecord(filePath string, record RunRecord) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create record file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(record); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode run record: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush record file '%s': %w", filePath, err)
	}
	return file.Close()
}

// LoadRecord reads a run record written by SaveRecord.
func LoadRecord(filePath string) (RunRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to open record file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to create gzip reader for record: %w", err)
	}
	defer gzReader.Close()

	var record RunRecord
	if err := gob.NewDecoder(gzReader).Decode(&record); err != nil {
		return RunRecord{}, fmt.Errorf("failed to decode run record from '%s': %w", filePath, err)
	}
	return record, nil
}
