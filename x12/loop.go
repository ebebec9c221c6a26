package x12

import (
	"encoding/json"
	"slices"

	"github.com/sirupsen/logrus"
)

// Loop describes a repeating pattern of segments and, once run, holds the
// groups of segments that matched it.
type Loop struct {
	// Position is the lookup key used by loop mappings. It must equal the
	// index at which the loop is registered with a Transaction.
	Position int

	matchers []Matcher
	contents [][]*Segment
}

// NewLoop returns a loop with the given position and matchers.
func NewLoop(position int, matchers ...Matcher) *Loop {
	return &Loop{Position: position, matchers: slices.Clone(matchers)}
}

// SetPosition sets the lookup position.
func (l *Loop) SetPosition(position int) *Loop {
	l.Position = position

	return l
}

// AddMatcher appends a matcher.
func (l *Loop) AddMatcher(m Matcher) *Loop {
	l.matchers = append(l.matchers, m)

	return l
}

// AddSegmentIdentifier appends a bare matcher for id.
func (l *Loop) AddSegmentIdentifier(id string) *Loop {
	return l.AddMatcher(Bare(id))
}

// AddSegmentIdentifiers appends a bare matcher for each id.
func (l *Loop) AddSegmentIdentifiers(ids ...string) *Loop {
	for _, id := range ids {
		l.AddSegmentIdentifier(id)
	}

	return l
}

// RemoveSegmentIdentifier drops every matcher whose identifier is id.
func (l *Loop) RemoveSegmentIdentifier(id string) *Loop {
	l.matchers = slices.DeleteFunc(l.matchers, func(m Matcher) bool { return m.SegmentID == id })

	return l
}

// Matchers returns a copy of the matcher list.
func (l *Loop) Matchers() []Matcher {
	return slices.Clone(l.matchers)
}

// SegmentIdentifiers returns the identifier of every matcher in order.
func (l *Loop) SegmentIdentifiers() []string {
	ids := make([]string, len(l.matchers))
	for i, m := range l.matchers {
		ids[i] = m.SegmentID
	}

	return ids
}

// LastSegmentIdentifier returns the identifier of the final matcher, or ""
// for an empty loop.
func (l *Loop) LastSegmentIdentifier() string {
	if len(l.matchers) == 0 {
		return ""
	}

	return l.matchers[len(l.matchers)-1].SegmentID
}

// Anchor returns the first matcher.
func (l *Loop) Anchor() (Matcher, bool) {
	if len(l.matchers) == 0 {
		return Matcher{}, false
	}

	return l.matchers[0], true
}

// Contents returns the matched groups from the last run.
func (l *Loop) Contents() [][]*Segment {
	return l.contents
}

// Run replaces the loop contents with the groups found in segments.
//
// Scanning starts at the first segment matching the anchor. Segments whose
// identifier is not part of the loop are skipped. When the anchor is
// qualified, a group may only start on a segment that satisfies the anchor
// qualifier. Every len(matchers) member segments form one group; a partial
// group at the end is dropped.
func (l *Loop) Run(segments []*Segment) {
	l.contents = nil

	anchor, ok := l.Anchor()
	if !ok {
		return
	}

	start := slices.IndexFunc(segments, anchor.Matches)
	if start < 0 {
		logrus.Debugf("loop %d: anchor %s not found", l.Position, anchor)
		return
	}

	members := make(map[string]struct{}, len(l.matchers))
	for _, m := range l.matchers {
		members[m.SegmentID] = struct{}{}
	}

	size := len(l.matchers)

	var group []*Segment

	for _, seg := range segments[start:] {
		if _, ok := members[seg.Name]; !ok {
			continue
		}

		if len(group) == 0 && anchor.IsQualified() && !anchor.Qualifier.Matches(seg) {
			continue
		}

		group = append(group, seg)

		if len(group) == size {
			l.contents = append(l.contents, group)
			group = nil
		}
	}

	logrus.Debugf("loop %d: %d groups, %d trailing segments dropped", l.Position, len(l.contents), len(group))
}

// MarshalJSON encodes the loop with its position, matchers and contents.
func (l *Loop) MarshalJSON() ([]byte, error) {
	contents := l.contents
	if contents == nil {
		contents = [][]*Segment{}
	}

	matchers := l.matchers
	if matchers == nil {
		matchers = []Matcher{}
	}

	return json.Marshal(struct {
		Position           int          `json:"position"`
		SegmentIdentifiers []Matcher    `json:"segmentIdentifiers"`
		Contents           [][]*Segment `json:"contents"`
	}{
		Position:           l.Position,
		SegmentIdentifiers: matchers,
		Contents:           contents,
	})
}
