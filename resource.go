package youtube_helper

// A Resource is one externally hosted video, identified by the platform's own ID.
type Resource interface {
	ID() string
	// URL should return the canonical URL for this resource. It is assumed that the Provider.Match that created the
	// Resource would successfully match this canonical URL.
	URL() string
	// EmbedURL is the URL used as the src of the embed markup.
	EmbedURL() string
	// EmbedHTML is markup that embeds the resource in a page.
	EmbedHTML() string
}
