// Package providers registers every built-in provider with youtube_helper.DefaultProviderRegistry when imported.
package providers

import (
	_ "github.com/alanbriolat/youtube-helper/provider/youtube"
)
