package sandbox

import "strings"

// ResolveRuntime matches langID (and optional version) against the
// cached runtime table. Matching is case-insensitive against both
// the canonical language name and every alias. There is no default
// fallback: no match means runtime_not_found.
func (c *Client) ResolveRuntime(langID string, version string) (Runtime, error) {
	want := strings.ToLower(strings.TrimSpace(langID))
	for _, rt := range c.runtimes {
		if !runtimeMatches(rt, want) {
			continue
		}
		if version != "" && !strings.EqualFold(rt.Version, version) {
			continue
		}
		return rt, nil
	}
	return Runtime{}, ErrRuntimeNotFound(langID)
}

func runtimeMatches(rt Runtime, want string) bool {
	if strings.ToLower(rt.Language) == want {
		return true
	}
	for _, alias := range rt.Aliases {
		if strings.ToLower(alias) == want {
			return true
		}
	}
	return false
}
