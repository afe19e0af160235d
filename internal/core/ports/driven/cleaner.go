package driven

// DescriptionCleaner turns an HTML-bearing description into plain text.
type DescriptionCleaner interface {
	// Clean returns the normalised form of raw. Cleaning clean text is a no-op.
	Clean(raw string) string
}
