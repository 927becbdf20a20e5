package youtube

import (
	"github.com/alanbriolat/youtube-helper"
)

const (
	ProviderName   = "youtube"
	IDProviderName = "youtube-id"
)

// Match is a youtube_helper.MatchFunc for YouTube URLs.
func Match(s string) (youtube_helper.Resource, error) {
	if resource, err := FromURL(s); err != nil {
		return nil, err
	} else {
		return resource, nil
	}
}

// MatchID is a youtube_helper.MatchFunc for bare video IDs.
func MatchID(s string) (youtube_helper.Resource, error) {
	if resource, err := New(s); err != nil {
		return nil, err
	} else {
		return resource, nil
	}
}

func NewProvider() youtube_helper.Provider {
	return youtube_helper.Provider{Name: ProviderName, Match: Match}
}

// NewIDProvider matches bare IDs. Any 11 byte string is an ID, so it should be tried after everything else.
func NewIDProvider() youtube_helper.Provider {
	return youtube_helper.Provider{Name: IDProviderName, Match: MatchID, Priority: youtube_helper.PriorityLowest}
}

func init() {
	youtube_helper.DefaultProviderRegistry.MustAdd(NewProvider())
	youtube_helper.DefaultProviderRegistry.MustAdd(NewIDProvider())
}
