package bitcoin

import "fmt"

// Chunk splits payload into ordered pieces of at most emb.ChunkSize bytes. Padding is
// left to the script templates.
func Chunk(payload []byte, emb Embedding) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	if emb.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrUnsupportedEmbedding, emb.ChunkSize)
	}

	count := (len(payload) + emb.ChunkSize - 1) / emb.ChunkSize
	if emb.MaxChunks > 0 && count > emb.MaxChunks {
		return nil, fmt.Errorf("%w: %d bytes need %d %s outputs, max %d",
			ErrPayloadTooLarge, len(payload), count, emb.Kind, emb.MaxChunks)
	}

	chunks := make([][]byte, 0, count)
	for start := 0; start < len(payload); start += emb.ChunkSize {
		end := start + emb.ChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		chunks = append(chunks, payload[start:end])
	}
	return chunks, nil
}
