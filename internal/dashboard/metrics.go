package dashboard

import (
	"math"
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

// Metrics são os contadores operacionais do painel.
type Metrics struct {
	TotalLeads int `json:"total_leads"`
	NewLeads   int `json:"new_leads"`
	InContact  int `json:"in_contact"`
	InVisit    int `json:"in_visit"`
	Proposal   int `json:"proposal"`
	Closed     int `json:"closed"`

	TodayVisits     int `json:"today_visits"`
	ScheduledVisits int `json:"scheduled_visits"`
	CompletedVisits int `json:"completed_visits"`

	DraftContracts  int `json:"draft_contracts"`
	SentContracts   int `json:"sent_contracts"`
	SignedContracts int `json:"signed_contracts"`

	AvailableProperties int `json:"available_properties"`
	FeaturedProperties  int `json:"featured_properties"`
	AvailableForRent    int `json:"available_for_rent"`
	AvailableForSale    int `json:"available_for_sale"`

	ConversionToVisit    int `json:"conversion_to_visit"`
	ConversionToProposal int `json:"conversion_to_proposal"`
	ConversionToClosed   int `json:"conversion_to_closed"`
}

func ComputeMetrics(leads []entity.Lead, visits []entity.Visit, contracts []entity.Contract, properties []entity.Property, now time.Time) Metrics {
	m := Metrics{TotalLeads: len(leads)}

	for _, l := range leads {
		switch l.Status {
		case entity.LeadStatusNew:
			m.NewLeads++
		case entity.LeadStatusQualification:
			m.InContact++
		case entity.LeadStatusVisit:
			m.InVisit++
		case entity.LeadStatusProposal:
			m.Proposal++
		case entity.LeadStatusContract:
			m.Closed++
		}
	}

	for _, v := range visits {
		switch v.Status {
		case entity.VisitStatusScheduled:
			m.ScheduledVisits++
			if IsToday(v.ScheduledFor, now) {
				m.TodayVisits++
			}
		case entity.VisitStatusCompleted:
			m.CompletedVisits++
		}
	}

	for _, c := range contracts {
		switch c.Status {
		case entity.ContractStatusDraft:
			m.DraftContracts++
		case entity.ContractStatusSent:
			m.SentContracts++
		case entity.ContractStatusSigned:
			m.SignedContracts++
		}
	}

	for _, p := range properties {
		if p.Featured {
			m.FeaturedProperties++
		}
		if p.Status != entity.PropertyStatusAvailable {
			continue
		}
		m.AvailableProperties++
		switch p.Category {
		case entity.PropertyCategoryRent:
			m.AvailableForRent++
		case entity.PropertyCategorySale:
			m.AvailableForSale++
		}
	}

	m.ConversionToVisit = conversionRate(m.InVisit+m.Proposal+m.Closed, m.TotalLeads)
	m.ConversionToProposal = conversionRate(m.Proposal+m.Closed, m.TotalLeads)
	m.ConversionToClosed = conversionRate(m.Closed, m.TotalLeads)

	return m
}

// conversionRate usa denominador mínimo 1: sem leads a taxa é 0, nunca NaN.
func conversionRate(reached, total int) int {
	denominator := total
	if denominator < 1 {
		denominator = 1
	}
	return int(math.Round(100 * float64(reached) / float64(denominator)))
}
