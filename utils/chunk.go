package utils

// ChunkStrings splits keys into consecutive chunks of at most size elements,
// preserving order. Batched store queries have a per-call arity cap, so any
// caller with an arbitrarily large key set runs each chunk separately and
// merges the results. A non-positive size yields the whole input as one chunk.
func ChunkStrings(keys []string, size int) [][]string {
	if len(keys) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]string{keys}
	}
	chunks := make([][]string, 0, (len(keys)+size-1)/size)
	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		chunks = append(chunks, keys[start:end])
	}
	return chunks
}
