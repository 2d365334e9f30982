package retriever

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"prompt-enhancer/internal/models"
)

// On-disk cache layout: a binary embedding file plus a JSON sidecar with the
// chunk texts and metadata. Both files must be present to load; any format
// mismatch causes a rebuild.
const (
	indexFileName  = "index.bin"
	chunksFileName = "chunks.json"

	indexMagic    = "PEIDX"
	schemaVersion = 1
)

type indexCache struct {
	dir string
}

func newIndexCache(dir string) *indexCache {
	return &indexCache{dir: dir}
}

func (c *indexCache) indexPath() string  { return filepath.Join(c.dir, indexFileName) }
func (c *indexCache) chunksPath() string { return filepath.Join(c.dir, chunksFileName) }

func (c *indexCache) exists() bool {
	if c.dir == "" {
		return false
	}
	if _, err := os.Stat(c.indexPath()); err != nil {
		return false
	}
	if _, err := os.Stat(c.chunksPath()); err != nil {
		return false
	}
	return true
}

type chunksSidecar struct {
	SchemaVersion int                    `json:"schema_version"`
	Chunks        []models.DocumentChunk `json:"chunks"`
}

// save writes the embeddings to the binary index file and the chunk texts
// and metadata to the JSON sidecar.
func (c *indexCache) save(chunks []models.DocumentChunk) error {
	if c.dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	dim := 0
	if len(chunks) > 0 {
		dim = len(chunks[0].Embedding)
	}
	var buf bytes.Buffer
	buf.WriteString(indexMagic)
	for _, v := range []uint32{schemaVersion, uint32(dim), uint32(len(chunks))} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to encode index header: %w", err)
		}
	}
	for _, chunk := range chunks {
		if len(chunk.Embedding) != dim {
			return fmt.Errorf("chunk %s has embedding dim %d, want %d", chunk.ChunkID, len(chunk.Embedding), dim)
		}
		if err := binary.Write(&buf, binary.LittleEndian, chunk.Embedding); err != nil {
			return fmt.Errorf("failed to encode embeddings: %w", err)
		}
	}
	if err := os.WriteFile(c.indexPath(), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	sidecar := chunksSidecar{SchemaVersion: schemaVersion, Chunks: chunks}
	data, err := json.MarshalIndent(sidecar, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chunk sidecar: %w", err)
	}
	if err := os.WriteFile(c.chunksPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write chunk sidecar: %w", err)
	}
	return nil
}

// load reads both cache files and returns the chunk collection with
// embeddings attached.
func (c *indexCache) load() ([]models.DocumentChunk, error) {
	data, err := os.ReadFile(c.chunksPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk sidecar: %w", err)
	}
	var sidecar chunksSidecar
	if err := json.Unmarshal(data, &sidecar); err != nil {
		return nil, fmt.Errorf("failed to parse chunk sidecar: %w", err)
	}
	if sidecar.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("chunk sidecar schema version %d, want %d", sidecar.SchemaVersion, schemaVersion)
	}

	f, err := os.Open(c.indexPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer f.Close()
	rd := bufio.NewReader(f)

	magic := make([]byte, len(indexMagic))
	if _, err := io.ReadFull(rd, magic); err != nil {
		return nil, fmt.Errorf("failed to read index magic: %w", err)
	}
	if string(magic) != indexMagic {
		return nil, fmt.Errorf("index file magic %q, want %q", magic, indexMagic)
	}
	var version, dim, count uint32
	for _, p := range []*uint32{&version, &dim, &count} {
		if err := binary.Read(rd, binary.LittleEndian, p); err != nil {
			return nil, fmt.Errorf("failed to read index header: %w", err)
		}
	}
	if version != schemaVersion {
		return nil, fmt.Errorf("index schema version %d, want %d", version, schemaVersion)
	}
	if int(count) != len(sidecar.Chunks) {
		return nil, fmt.Errorf("index has %d embeddings for %d chunks", count, len(sidecar.Chunks))
	}

	chunks := sidecar.Chunks
	for i := range chunks {
		emb := make([]float32, dim)
		if err := binary.Read(rd, binary.LittleEndian, emb); err != nil {
			return nil, fmt.Errorf("failed to read embedding %d: %w", i, err)
		}
		chunks[i].Embedding = emb
	}
	return chunks, nil
}
