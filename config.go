package youtube_helper

import (
	"strings"
	"text/template"
)

const DefaultOutputTemplate = "{{.ProviderName}}\t{{.ID}}\t{{.URL}}"

type OutputConfig interface {
	Render(match *Match) (string, error)
}

type outputConfig struct {
	Template *template.Template
}

func NewOutputConfig() OutputConfig {
	return &outputConfig{
		Template: template.Must(template.New("output").Parse(DefaultOutputTemplate)),
	}
}

// NewOutputConfigFromString parses text as the template applied to every Match. The fields available are those of
// outputTemplateArgs.
func NewOutputConfigFromString(text string) (OutputConfig, error) {
	tmpl, err := template.New("output").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, err
	}
	return &outputConfig{Template: tmpl}, nil
}

func (c *outputConfig) Render(match *Match) (string, error) {
	args := outputTemplateArgs{
		ProviderName: match.ProviderName,
		ID:           match.Resource.ID(),
		URL:          match.Resource.URL(),
		EmbedURL:     match.Resource.EmbedURL(),
		EmbedHTML:    match.Resource.EmbedHTML(),
	}
	builder := strings.Builder{}
	if err := c.Template.Execute(&builder, &args); err != nil {
		return "", err
	} else {
		return builder.String(), nil
	}
}

type outputTemplateArgs struct {
	ProviderName string
	ID           string
	URL          string
	EmbedURL     string
	EmbedHTML    string
}
