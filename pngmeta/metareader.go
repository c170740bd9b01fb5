package pngmeta

// Extract returns the data of the tEXt chunk sitting directly before IEND.
// Any other tEXt chunk in the chain is ignored. The result aliases buf.
func Extract(buf []byte) ([]byte, error) {
	var (
		prev    Chunk
		hasPrev bool
	)
	for c, err := range Walk(buf) {
		if err != nil {
			return nil, err
		}
		if c.Type == IEND {
			if !hasPrev || prev.Type != payloadType {
				return nil, ErrPayloadNotFound
			}
			return prev.Data, nil
		}
		prev, hasPrev = c, true
	}
	// Walk only finishes cleanly after IEND
	return nil, ErrTruncatedChain
}
