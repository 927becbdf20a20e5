package youtube

import (
	"html"
	"strings"

	"github.com/samber/lo"

	"github.com/alanbriolat/youtube-helper/generic"
)

const (
	embedPath           = "/embed/"
	// Entity-escaped, the URL goes straight into markup.
	embedQuerySeparator = "&amp;"
	srcAttribute        = "src"
)

// BuildEmbedURL builds the embed URL with the stored parameters, overridden by extraParameters on key collision.
func (r *Resource) BuildEmbedURL(extraParameters *Values) string {
	embedURL := "https://" + HostDefault + embedPath + r.id
	parameters := r.parameters.Clone().Merge(extraParameters)
	if parameters.Len() == 0 {
		return embedURL
	}
	pairs := lo.Map(parameters.Keys(), func(key string, _ int) string {
		value, _ := parameters.Get(key)
		if value.IsNone() {
			return key
		}
		return key + "=" + html.EscapeString(value.Value)
	})
	return embedURL + "?" + strings.Join(pairs, embedQuerySeparator)
}

// BuildEmbedHTML builds an iframe tag. Attributes are the stored attributes overridden by extraAttributes, with src
// always set to BuildEmbedURL(extraParameters).
func (r *Resource) BuildEmbedHTML(extraAttributes *Values, extraParameters *Values) string {
	attributes := r.attributes.Clone().Merge(extraAttributes)
	attributes.Set(srcAttribute, Text(r.BuildEmbedURL(extraParameters)))

	builder := strings.Builder{}
	builder.WriteString("<iframe")
	attributes.Each(func(key string, value generic.Option[string]) {
		builder.WriteByte(' ')
		builder.WriteString(key)
		if value.IsNone() {
			return
		}
		// src was escaped by BuildEmbedURL
		if key != srcAttribute {
			value.Value = html.EscapeString(value.Value)
		}
		builder.WriteString(`="`)
		builder.WriteString(value.Value)
		builder.WriteByte('"')
	})
	builder.WriteString("></iframe>")
	return builder.String()
}
