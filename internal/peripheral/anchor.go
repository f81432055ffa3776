package peripheral

import (
	"slices"
	"strings"
	"sync"
)

// AnchorScroller moves the viewport to named page sections.
type AnchorScroller struct {
	mu      sync.Mutex
	anchors []string
	current string
}

// NewAnchorScroller returns a scroller for the given section names.
func NewAnchorScroller(anchors []string) *AnchorScroller {
	return &AnchorScroller{anchors: slices.Clone(anchors)}
}

// FollowAnchor scrolls to target ("#name" or "name"). Unknown targets are
// ignored and false is returned.
func (a *AnchorScroller) FollowAnchor(target string) bool {
	name := strings.TrimPrefix(strings.TrimSpace(target), "#")

	a.mu.Lock()
	defer a.mu.Unlock()
	if name == "" || !slices.Contains(a.anchors, name) {
		return false
	}
	a.current = name
	return true
}

// Current returns the section scrolled to last, or "".
func (a *AnchorScroller) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
