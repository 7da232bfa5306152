package query

import "github.com/poiesic/lexit/core"

// TranslateMonitor provides hooks to observe phrase translation.
// Implement this interface to track which rules fire as the token
// cursor advances; useful for auditing why a phrase produced a
// particular filter.
type TranslateMonitor interface {
	Start(tokens []string)
	RuleMatched(name string, cursor, consumed int)
	TokenSkipped(token string, cursor int)
	Finish(criteria core.FilterCriteria)
}

// noopMonitor is a no-op implementation of TranslateMonitor
type noopMonitor struct{}

var _ TranslateMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []string)               {}
func (n *noopMonitor) RuleMatched(_ string, _, _ int) {}
func (n *noopMonitor) TokenSkipped(_ string, _ int)   {}
func (n *noopMonitor) Finish(_ core.FilterCriteria)   {}
