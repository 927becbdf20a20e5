package youtube_helper

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestOutputConfig(t *testing.T) {
	assert := assert_.New(t)
	match := &Match{ProviderName: "fake", Resource: fakeResource("abc")}

	out, err := NewOutputConfig().Render(match)
	assert.NoError(err)
	assert.Equal("fake\tabc\thttps://example.com/abc", out)

	config, err := NewOutputConfigFromString("{{.ID}} {{.EmbedURL}} {{.EmbedHTML}}")
	if assert.NoError(err) {
		out, err = config.Render(match)
		assert.NoError(err)
		assert.Equal("abc https://example.com/embed/abc <iframe></iframe>", out)
	}

	_, err = NewOutputConfigFromString("{{.ID")
	assert.Error(err)

	config, err = NewOutputConfigFromString("{{.Title}}")
	if assert.NoError(err) {
		_, err = config.Render(match)
		assert.Error(err)
	}
}
