package dashboard

import (
	"slices"
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

const RecentLeadsLimit = 5

const (
	NextActionFirstContact  = "first contact"
	NextActionScheduleVisit = "schedule visit"
	NextActionSendProposal  = "send proposal"
	NextActionAwaitResponse = "await response"
	NextActionDone          = "done"
	NextActionReview        = "review"
)

type RecentLead struct {
	entity.Lead
	DaysSinceCreated int    `json:"days_since_created"`
	DaysSinceUpdate  int    `json:"days_since_update"`
	NextAction       string `json:"next_action"`
	NeedsAttention   bool   `json:"needs_attention"`
}

type TimelineItem struct {
	entity.Visit
	Property *entity.Property `json:"property"`
	Lead     *entity.Lead     `json:"lead"`
	IsPast   bool             `json:"is_past"`
}

// NextAction é a próxima ação sugerida, derivada apenas do status.
func NextAction(status entity.LeadStatus) string {
	switch status {
	case entity.LeadStatusNew:
		return NextActionFirstContact
	case entity.LeadStatusQualification:
		return NextActionScheduleVisit
	case entity.LeadStatusVisit:
		return NextActionSendProposal
	case entity.LeadStatusProposal:
		return NextActionAwaitResponse
	case entity.LeadStatusContract:
		return NextActionDone
	default:
		return NextActionReview
	}
}

// RecentLeads devolve os cinco leads mais recentes por data de criação.
func RecentLeads(leads []entity.Lead, now time.Time) []RecentLead {
	sorted := slices.Clone(leads)
	slices.SortStableFunc(sorted, func(a, b entity.Lead) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(sorted) > RecentLeadsLimit {
		sorted = sorted[:RecentLeadsLimit]
	}

	out := make([]RecentLead, 0, len(sorted))
	for _, l := range sorted {
		sinceUpdate := CalendarDaysBetween(l.UpdatedAt, now)
		out = append(out, RecentLead{
			Lead:             l,
			DaysSinceCreated: CalendarDaysBetween(l.CreatedAt, now),
			DaysSinceUpdate:  sinceUpdate,
			NextAction:       NextAction(l.Status),
			NeedsAttention:   sinceUpdate >= StaleLeadDays && l.Status != entity.LeadStatusContract,
		})
	}
	return out
}

// TodayTimeline lista todas as visitas de hoje, de qualquer status, em ordem de horário.
func TodayTimeline(visits []entity.Visit, leads []entity.Lead, properties []entity.Property, now time.Time) []TimelineItem {
	return todayTimeline(indexLeads(leads), indexProperties(properties), visits, now)
}

func todayTimeline(leadsByID leadIndex, propertiesByID propertyIndex, visits []entity.Visit, now time.Time) []TimelineItem {
	items := []TimelineItem{}
	for _, v := range visits {
		if !IsToday(v.ScheduledFor, now) {
			continue
		}
		items = append(items, TimelineItem{
			Visit:    v,
			Property: propertiesByID[v.PropertyID],
			Lead:     leadsByID[v.LeadID],
			IsPast:   v.ScheduledFor.Before(now),
		})
	}
	slices.SortStableFunc(items, func(a, b TimelineItem) int {
		return a.ScheduledFor.Compare(b.ScheduledFor)
	})
	return items
}
