package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alanbriolat/youtube-helper"
	"github.com/alanbriolat/youtube-helper/generic"
	"github.com/alanbriolat/youtube-helper/util"
)

// Values is an ordered set of query parameters or markup attributes. A None value is rendered as a bare flag.
type Values = generic.OrderedMap[string, generic.Option[string]]

func NewValues() *Values {
	return generic.NewOrderedMap[string, generic.Option[string]]()
}

// Text is a value that renders as key="value".
func Text(s string) generic.Option[string] {
	return generic.Some(s)
}

// Int is a numeric value that renders as key="n".
func Int(n int) generic.Option[string] {
	return generic.Some(strconv.Itoa(n))
}

// Flag is a value-less entry that renders as just the key.
func Flag() generic.Option[string] {
	return generic.None[string]()
}

// DefaultAttributes are the iframe attributes of a new Resource. The empty "src" entry reserves the position of the
// embed URL, which always replaces it.
func DefaultAttributes() *Values {
	attributes := NewValues()
	attributes.Set("width", Int(560))
	attributes.Set("height", Int(315))
	attributes.Set("src", Text(""))
	attributes.Set("frameborder", Int(0))
	attributes.Set("allowfullscreen", Flag())
	return attributes
}

// Resource is a single YouTube video. It must be created with New or FromURL; the zero value has no valid ID. It is
// not safe for concurrent use if SetID, SetParameters or SetAttributes are called.
type Resource struct {
	id         string
	parameters *Values
	attributes *Values
}

var _ youtube_helper.Resource = (*Resource)(nil)
var _ validation.Validatable = (*Resource)(nil)

// New creates a Resource, returning *youtube_helper.InvalidIDError if id isn't a valid video ID.
func New(id string) (*Resource, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return &Resource{
		id:         id,
		parameters: NewValues(),
		attributes: DefaultAttributes(),
	}, nil
}

var (
	embedPathPattern = regexp.MustCompile(`^/embed/([\w-]{11})($|/|#|\?)`)
	shortPathPattern = regexp.MustCompile(`^/([\w-]{11})($|/|#|\?)`)
)

// FromURL extracts the video ID from a YouTube URL and creates a Resource from it.
//
// Allowed URL formats:
//
//	https://(www.|m.)youtube.com/watch?v={VIDEO_ID}
//	https://(www.|m.)youtube.com/embed/{VIDEO_ID}
//	https://youtu.be/{VIDEO_ID}
func FromURL(rawURL string) (*Resource, error) {
	parsedURL, err := util.ParseAbsoluteURL(rawURL)
	if err != nil {
		return nil, &youtube_helper.InvalidURLError{URL: rawURL, Err: err}
	}
	id, err := extractVideoID(rawURL, parsedURL)
	if err != nil {
		return nil, err
	}
	return New(id)
}

func extractVideoID(rawURL string, parsedURL *url.URL) (string, error) {
	host := strings.ToLower(parsedURL.Hostname())
	path := parsedURL.EscapedPath()
	switch host {
	case HostBareDomain, HostMobile, HostWWW:
		if path == "/watch" && parsedURL.RawQuery != "" {
			// The last of several v parameters wins.
			if vs := parsedURL.Query()["v"]; len(vs) > 0 && IsIDValid(vs[len(vs)-1]) {
				return vs[len(vs)-1], nil
			}
		}
		if matches := embedPathPattern.FindStringSubmatch(path); matches != nil {
			return matches[1], nil
		}
	case HostShortDomain:
		if matches := shortPathPattern.FindStringSubmatch(path); matches != nil {
			return matches[1], nil
		}
	default:
		return "", &youtube_helper.InvalidHostError{Host: host, ValidHosts: validHostList()}
	}
	return "", &youtube_helper.InvalidURLError{URL: rawURL}
}

func (r *Resource) String() string {
	return r.id
}

func (r *Resource) ID() string {
	return r.id
}

// SetID replaces the ID after validating it. On error the Resource is unchanged.
func (r *Resource) SetID(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	r.id = id
	return nil
}

// Validate implements validation.Validatable.
func (r *Resource) Validate() error {
	return validation.Validate(r.id, IDRule)
}

// Parameters returns a copy of the query parameters added to every embed URL.
func (r *Resource) Parameters() *Values {
	return r.parameters.Clone()
}

// SetParameters replaces all query parameters. A nil parameters clears them.
func (r *Resource) SetParameters(parameters *Values) *Resource {
	r.parameters = parameters.Clone()
	return r
}

// Attributes returns a copy of the iframe attributes used by BuildEmbedHTML.
func (r *Resource) Attributes() *Values {
	return r.attributes.Clone()
}

// SetAttributes replaces all iframe attributes, including the defaults. A nil attributes clears them.
func (r *Resource) SetAttributes(attributes *Values) *Resource {
	r.attributes = attributes.Clone()
	return r
}

func (r *Resource) BuildURL() string {
	return r.BuildDefaultURL()
}

func (r *Resource) BuildDefaultURL() string {
	return generic.Unwrap(r.BuildURLForHost(HostDefault))
}

func (r *Resource) BuildAliasURL() string {
	return generic.Unwrap(r.BuildURLForHost(HostAlias))
}

func (r *Resource) BuildMobileURL() string {
	return generic.Unwrap(r.BuildURLForHost(HostMobile))
}

func (r *Resource) BuildShortURL() string {
	return generic.Unwrap(r.BuildURLForHost(HostShort))
}

// BuildURLForHost builds the watch URL used by a specific host, returning *youtube_helper.InvalidHostError for a host
// that isn't recognised. The host is matched exactly, not case-insensitively.
func (r *Resource) BuildURLForHost(host string) (string, error) {
	var path string
	switch host {
	case HostBareDomain, HostMobile, HostWWW:
		path = "/watch?v="
	case HostShortDomain:
		path = "/"
	default:
		return "", &youtube_helper.InvalidHostError{Host: host, ValidHosts: validHostList()}
	}
	return fmt.Sprintf("https://%s%s%s", host, path, r.id), nil
}

func (r *Resource) URL() string {
	return r.BuildURL()
}

func (r *Resource) EmbedURL() string {
	return r.BuildEmbedURL(nil)
}

func (r *Resource) EmbedHTML() string {
	return r.BuildEmbedHTML(nil, nil)
}
