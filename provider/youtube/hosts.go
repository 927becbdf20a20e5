package youtube

import (
	"strings"

	"github.com/alanbriolat/youtube-helper/generic"
)

const (
	HostShortDomain = "youtu.be"
	HostBareDomain  = "youtube.com"
	HostMobile      = "m.youtube.com"
	HostWWW         = "www.youtube.com"

	HostDefault = HostWWW
	HostAlias   = HostBareDomain
	HostShort   = HostShortDomain
)

// validHosts is ordered for the benefit of error messages.
var validHosts = []string{
	HostShortDomain,
	HostBareDomain,
	HostMobile,
	HostWWW,
}

var validHostSet = generic.NewSet(validHosts...)

// IsHostValid reports whether host, in any letter case, is one of the recognised YouTube hosts.
func IsHostValid(host string) bool {
	return validHostSet.Contains(strings.ToLower(host))
}

// ValidHosts returns a fresh copy of the recognised hosts.
func ValidHosts() generic.Set[string] {
	return validHostSet.Clone()
}

func validHostList() []string {
	hosts := make([]string, len(validHosts))
	copy(hosts, validHosts)
	return hosts
}
