// Package events holds the pure technical/cultural partitioning of a
// registrant's event-participation map, shared by the console table view
// and the CSV export.
package events

import (
	"sort"
	"strings"

	"medha-admin/models"
)

// DefaultTechnicalEvents is the stock classification list; deployments can
// override it through TECHNICAL_EVENTS.
var DefaultTechnicalEvents = []string{
	"coding",
	"webDesigning",
	"gaming",
	"quiz",
	"productLaunch",
	"itManager",
	"reels",
}

// Grouper partitions event-participation maps using a fixed set of
// technical event names. Everything outside the set counts as cultural.
type Grouper struct {
	technical map[string]bool
}

func NewGrouper(technicalEvents []string) *Grouper {
	set := make(map[string]bool, len(technicalEvents))
	for _, name := range technicalEvents {
		set[name] = true
	}
	return &Grouper{technical: set}
}

// Group splits details into technical and cultural buckets. Every input
// event lands in exactly one bucket; the input is never modified.
func (g *Grouper) Group(details models.EventDetails) (technical, cultural models.EventDetails) {
	technical = models.EventDetails{}
	cultural = models.EventDetails{}
	for event, participants := range details {
		if g.technical[event] {
			technical[event] = participants
		} else {
			cultural[event] = participants
		}
	}
	return technical, cultural
}

// FormatGroup renders one bucket as "event: p1, p2 | event2: p3" with
// events and participant slots in sorted order.
func FormatGroup(group models.EventDetails) string {
	names := make([]string, 0, len(group))
	for event := range group {
		names = append(names, event)
	}
	sort.Strings(names)

	segments := make([]string, 0, len(names))
	for _, event := range names {
		segments = append(segments, event+": "+strings.Join(participantNames(group[event]), ", "))
	}
	return strings.Join(segments, " | ")
}

func participantNames(participants map[string]string) []string {
	keys := make([]string, 0, len(participants))
	for key := range participants {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, participants[key])
	}
	return names
}
