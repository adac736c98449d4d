package dashboard

import (
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

// StaleLeadDays é quantos dias de calendário sem atualização tornam um lead "sem contato".
const StaleLeadDays = 2

type VisitWithRefs struct {
	entity.Visit
	Property *entity.Property `json:"property"`
	Lead     *entity.Lead     `json:"lead"`
}

type FollowUpWithLead struct {
	entity.FollowUp
	Lead *entity.Lead `json:"lead"`
}

// Pendencies é o que precisa de atenção hoje.
type Pendencies struct {
	LeadsWithoutContact []entity.Lead      `json:"leads_without_contact"`
	TodayVisitsList     []VisitWithRefs    `json:"today_visits_list"`
	OverdueFollowUps    []FollowUpWithLead `json:"overdue_follow_ups"`
	TodayFollowUps      []FollowUpWithLead `json:"today_follow_ups"`
	TotalUrgent         int                `json:"total_urgent"`
}

func ComputePendencies(leads []entity.Lead, visits []entity.Visit, properties []entity.Property, followUps []entity.FollowUp, now time.Time) Pendencies {
	return computePendencies(indexLeads(leads), indexProperties(properties), leads, visits, followUps, now)
}

func computePendencies(leadsByID leadIndex, propertiesByID propertyIndex, leads []entity.Lead, visits []entity.Visit, followUps []entity.FollowUp, now time.Time) Pendencies {
	p := Pendencies{
		LeadsWithoutContact: []entity.Lead{},
		TodayVisitsList:     []VisitWithRefs{},
		OverdueFollowUps:    []FollowUpWithLead{},
		TodayFollowUps:      []FollowUpWithLead{},
	}

	staleNew := 0
	for _, l := range leads {
		if l.Status == entity.LeadStatusContract {
			continue
		}
		if CalendarDaysBetween(l.UpdatedAt, now) < StaleLeadDays {
			continue
		}
		p.LeadsWithoutContact = append(p.LeadsWithoutContact, l)
		if l.Status == entity.LeadStatusNew {
			staleNew++
		}
	}

	for _, v := range visits {
		if v.Status != entity.VisitStatusScheduled || !IsToday(v.ScheduledFor, now) {
			continue
		}
		p.TodayVisitsList = append(p.TodayVisitsList, VisitWithRefs{
			Visit:    v,
			Property: propertiesByID[v.PropertyID],
			Lead:     leadsByID[v.LeadID],
		})
	}

	for _, f := range followUps {
		if f.Status != entity.FollowUpStatusPending {
			continue
		}
		item := FollowUpWithLead{FollowUp: f, Lead: leadsByID[f.LeadID]}
		switch {
		case IsToday(f.DueAt, now):
			p.TodayFollowUps = append(p.TodayFollowUps, item)
		case f.DueAt.Before(now):
			p.OverdueFollowUps = append(p.OverdueFollowUps, item)
		}
	}

	// Só leads novos parados contam como urgentes.
	p.TotalUrgent = len(p.OverdueFollowUps) + staleNew

	return p
}
