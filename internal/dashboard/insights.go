package dashboard

import (
	"strings"
	"unicode/utf8"

	"github.com/xavierca1/imobi/internal/entity"
)

// MinDescriptionLength abaixo disso a descrição não conta como descrição de verdade.
const MinDescriptionLength = 50

type TypeGroup struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Total   int    `json:"total"`
	ForRent int    `json:"for_rent"`
	ForSale int    `json:"for_sale"`
}

type PropertyInsights struct {
	Available          int         `json:"available"`
	WithoutImages      int         `json:"without_images"`
	WithoutDescription int         `json:"without_description"`
	NeedsAttention     int         `json:"needs_attention"`
	ByType             []TypeGroup `json:"by_type"`
}

const typeOther = "other"

var typeGroupOrder = []struct{ key, label string }{
	{entity.PropertyTypeHouse, "Casa"},
	{entity.PropertyTypeApartment, "Apartamento"},
	{entity.PropertyTypeLand, "Terreno"},
	{entity.PropertyTypeCommercial, "Comercial"},
	{typeOther, "Outro"},
}

var typeAliases = map[string]string{
	"house":       entity.PropertyTypeHouse,
	"casa":        entity.PropertyTypeHouse,
	"apartment":   entity.PropertyTypeApartment,
	"apartamento": entity.PropertyTypeApartment,
	"land":        entity.PropertyTypeLand,
	"terreno":     entity.PropertyTypeLand,
	"commercial":  entity.PropertyTypeCommercial,
	"comercial":   entity.PropertyTypeCommercial,
}

func normalizeType(t string) string {
	if key, ok := typeAliases[strings.ToLower(strings.TrimSpace(t))]; ok {
		return key
	}
	return typeOther
}

// ComputePropertyInsights aponta cadastros incompletos entre os imóveis disponíveis
// e agrupa o portfólio por tipo. Um imóvel sem fotos e sem descrição conta duas
// vezes em NeedsAttention.
func ComputePropertyInsights(properties []entity.Property) PropertyInsights {
	var in PropertyInsights
	groups := make(map[string]*TypeGroup, len(typeGroupOrder))

	for _, p := range properties {
		key := normalizeType(p.Type)
		g, ok := groups[key]
		if !ok {
			g = &TypeGroup{Type: key}
			groups[key] = g
		}
		g.Total++

		if p.Status != entity.PropertyStatusAvailable {
			continue
		}
		in.Available++

		switch p.Category {
		case entity.PropertyCategoryRent:
			g.ForRent++
		case entity.PropertyCategorySale:
			g.ForSale++
		}

		if len(p.Images) == 0 {
			in.WithoutImages++
		}
		if utf8.RuneCountInString(p.Description) < MinDescriptionLength {
			in.WithoutDescription++
		}
	}

	in.NeedsAttention = in.WithoutImages + in.WithoutDescription

	in.ByType = make([]TypeGroup, 0, len(groups))
	for _, o := range typeGroupOrder {
		if g, ok := groups[o.key]; ok {
			g.Label = o.label
			in.ByType = append(in.ByType, *g)
		}
	}

	return in
}
