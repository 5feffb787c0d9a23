package friday

import "strings"

// bannedKeywords is the fixed denylist of unsafe terms. Matching is
// case-insensitive substring matching over the whole message.
var bannedKeywords = []string{"kill", "suicide", "bomb", "terrorist", "hate speech"}

// PolicyFilter screens outgoing user text against the denylist. Only
// authenticated traffic is screened; guests are bounded by quota instead.
// That asymmetry is a recorded policy decision, not an accident.
type PolicyFilter struct {
	keywords []string
}

// NewPolicyFilter returns a filter over the default denylist.
func NewPolicyFilter() *PolicyFilter {
	return &PolicyFilter{keywords: bannedKeywords}
}

// NewPolicyFilterWithKeywords returns a filter over a custom denylist.
func NewPolicyFilterWithKeywords(keywords []string) *PolicyFilter {
	return &PolicyFilter{keywords: keywords}
}

// Screen reports whether text is allowed. It has no side effects; reporting a
// rejected message is the caller's responsibility.
func (f *PolicyFilter) Screen(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range f.keywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}
