package main

import (
	"bytes"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func run(args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"youtube-resource"}, args...))
	return out.String(), err
}

func TestShow(t *testing.T) {
	assert := assert_.New(t)

	out, err := run("https://youtu.be/5qanlirrRWs", "JXMyZ929lpY")
	assert.NoError(err)
	assert.Equal(
		"youtube\t5qanlirrRWs\thttps://www.youtube.com/watch?v=5qanlirrRWs\n"+
			"youtube-id\tJXMyZ929lpY\thttps://www.youtube.com/watch?v=JXMyZ929lpY\n",
		out,
	)

	out, err = run("--format", "{{.EmbedURL}}", "https://m.youtube.com/watch?v=Mmh-ew1swD4")
	assert.NoError(err)
	assert.Equal("https://www.youtube.com/embed/Mmh-ew1swD4\n", out)

	_, err = run("--format", "{{.Missing}}", "5qanlirrRWs")
	assert.Error(err)

	_, err = run("https://example.com/watch?v=5qanlirrRWs")
	if assert.Error(err) {
		assert.Contains(err.Error(), "match failed")
	}
}

func TestURL(t *testing.T) {
	assert := assert_.New(t)

	for variant, expected := range map[string]string{
		"default": "https://www.youtube.com/watch?v=5qanlirrRWs\n",
		"alias":   "https://youtube.com/watch?v=5qanlirrRWs\n",
		"mobile":  "https://m.youtube.com/watch?v=5qanlirrRWs\n",
		"short":   "https://youtu.be/5qanlirrRWs\n",
	} {
		out, err := run("url", "--variant", variant, "https://www.youtube.com/embed/5qanlirrRWs")
		assert.NoError(err, variant)
		assert.Equal(expected, out, variant)
	}

	_, err := run("url", "--variant", "tiny", "5qanlirrRWs")
	assert.EqualError(err, `unknown URL variant "tiny"`)

	_, err = run("url")
	assert.Error(err)
}

func TestEmbed(t *testing.T) {
	assert := assert_.New(t)

	out, err := run("embed", "--param", "autoplay=1", "--param", "controls", "5qanlirrRWs")
	assert.NoError(err)
	assert.Equal("https://www.youtube.com/embed/5qanlirrRWs?autoplay=1&amp;controls\n", out)
}

func TestHTML(t *testing.T) {
	assert := assert_.New(t)

	out, err := run("html", "5qanlirrRWs")
	assert.NoError(err)
	assert.Equal(`<iframe width="560" height="315" src="https://www.youtube.com/embed/5qanlirrRWs" frameborder="0" allowfullscreen></iframe>`+"\n", out)

	out, err = run("html", "--width", "800", "--height", "600", "--class", "video", "--param", "rel=0", "5qanlirrRWs")
	assert.NoError(err)
	assert.Equal(`<iframe width="800" height="600" src="https://www.youtube.com/embed/5qanlirrRWs?rel=0" frameborder="0" allowfullscreen class="video"></iframe>`+"\n", out)
}

func TestHosts(t *testing.T) {
	assert := assert_.New(t)

	out, err := run("hosts")
	assert.NoError(err)
	assert.Equal("m.youtube.com\nwww.youtube.com\nyoutu.be\nyoutube.com\n", out)
}

func TestParseValues(t *testing.T) {
	assert := assert_.New(t)

	values := parseValues([]string{"a=1", "b", "c=", "a=2"})
	assert.Equal([]string{"a", "b", "c"}, values.Keys())
	a, _ := values.Get("a")
	assert.Equal("2", a.Unwrap())
	b, _ := values.Get("b")
	assert.True(b.IsNone())
	c, _ := values.Get("c")
	assert.True(c.IsSome())
	assert.Equal("", c.Value)
}
