package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/imobi/internal/entity"
)

func TestComputeMetrics_NoLeadsNeverNaN(t *testing.T) {
	m := ComputeMetrics(nil, nil, nil, nil, testNow)

	assert.Equal(t, 0, m.TotalLeads)
	assert.Equal(t, 0, m.ConversionToVisit)
	assert.Equal(t, 0, m.ConversionToProposal)
	assert.Equal(t, 0, m.ConversionToClosed)
}

func TestComputeMetrics_LeadFunnel(t *testing.T) {
	leads := []entity.Lead{
		makeLead("1", entity.LeadStatusNew, 1, 1),
		makeLead("2", entity.LeadStatusQualification, 1, 1),
		makeLead("3", entity.LeadStatusVisit, 1, 1),
		makeLead("4", entity.LeadStatusContract, 1, 1),
	}

	m := ComputeMetrics(leads, nil, nil, nil, testNow)

	assert.Equal(t, 4, m.TotalLeads)
	assert.Equal(t, 1, m.NewLeads)
	assert.Equal(t, 1, m.InContact)
	assert.Equal(t, 1, m.InVisit)
	assert.Equal(t, 0, m.Proposal)
	assert.Equal(t, 1, m.Closed)
	assert.Equal(t, 50, m.ConversionToVisit)
	assert.Equal(t, 25, m.ConversionToProposal)
	assert.Equal(t, 25, m.ConversionToClosed)
}

func TestComputeMetrics_ConversionRounding(t *testing.T) {
	leads := []entity.Lead{
		makeLead("1", entity.LeadStatusVisit, 1, 1),
		makeLead("2", entity.LeadStatusProposal, 1, 1),
		makeLead("3", entity.LeadStatusNew, 1, 1),
	}

	m := ComputeMetrics(leads, nil, nil, nil, testNow)

	assert.Equal(t, 67, m.ConversionToVisit)
	assert.Equal(t, 33, m.ConversionToProposal)
	assert.Equal(t, 0, m.ConversionToClosed)
}

func TestComputeMetrics_LostAndClosedLeadsOnlyCountInTotal(t *testing.T) {
	leads := []entity.Lead{
		makeLead("1", entity.LeadStatusLost, 1, 1),
		makeLead("2", entity.LeadStatusClosed, 1, 1),
	}

	m := ComputeMetrics(leads, nil, nil, nil, testNow)

	assert.Equal(t, 2, m.TotalLeads)
	assert.Equal(t, 0, m.Closed)
	assert.Equal(t, 0, m.ConversionToClosed)
}

func TestComputeMetrics_Visits(t *testing.T) {
	visits := []entity.Visit{
		makeVisit("v1", "1", "p1", at(9, 0), entity.VisitStatusScheduled),
		makeVisit("v2", "1", "p1", at(11, 0), entity.VisitStatusCompleted),
		makeVisit("v3", "1", "p1", daysAgo(1), entity.VisitStatusScheduled),
		makeVisit("v4", "1", "p1", testNow.AddDate(0, 0, 1), entity.VisitStatusCancelled),
		makeVisit("v5", "1", "p1", EndOfDay(testNow), entity.VisitStatusScheduled),
	}

	m := ComputeMetrics(nil, visits, nil, nil, testNow)

	assert.Equal(t, 2, m.TodayVisits)
	assert.Equal(t, 3, m.ScheduledVisits)
	assert.Equal(t, 1, m.CompletedVisits)
}

func TestComputeMetrics_ContractsAndProperties(t *testing.T) {
	contracts := []entity.Contract{
		{ID: "c1", Status: entity.ContractStatusDraft},
		{ID: "c2", Status: entity.ContractStatusSent},
		{ID: "c3", Status: entity.ContractStatusSigned},
		{ID: "c4", Status: entity.ContractStatusSigned},
	}
	featured := makeProperty("p3", "house", entity.PropertyCategorySale, entity.PropertyStatusSold)
	featured.Featured = true
	properties := []entity.Property{
		makeProperty("p1", "apartment", entity.PropertyCategoryRent, entity.PropertyStatusAvailable),
		makeProperty("p2", "house", entity.PropertyCategorySale, entity.PropertyStatusAvailable),
		featured,
	}

	m := ComputeMetrics(nil, nil, contracts, properties, testNow)

	assert.Equal(t, 1, m.DraftContracts)
	assert.Equal(t, 1, m.SentContracts)
	assert.Equal(t, 2, m.SignedContracts)
	assert.Equal(t, 2, m.AvailableProperties)
	assert.Equal(t, 1, m.FeaturedProperties)
	assert.Equal(t, 1, m.AvailableForRent)
	assert.Equal(t, 1, m.AvailableForSale)
}
