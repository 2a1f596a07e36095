package catalog

import (
	"github.com/acaidecasa/storefront/internal/domain"
)

// Default returns the embedded store menu. It panics on invalid data, which
// only happens when the literals below are edited inconsistently.
func Default() *Catalog {
	c, err := New(defaultCategories(), defaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{ID: domain.CategoryPromoPague1Leve2, Label: "Pague 1, leve 2"},
		{ID: domain.CategoryZeroAcucar, Label: "Zero açúcar"},
		{ID: domain.CategoryAcaiTradicional, Label: "Açaí tradicional"},
		{ID: domain.CategoryEspeciais, Label: "Especiais"},
	}
}

// baseToppingGroups are the standard customization groups shared by every cup
func baseToppingGroups() []domain.ToppingGroup {
	return []domain.ToppingGroup{
		{
			ID:          "coberturas",
			Name:        "Coberturas",
			Description: "Escolha até 2 coberturas",
			Min:         0,
			Max:         2,
			Options: []domain.ToppingOption{
				{ID: "cob-amora", Name: "Cobertura Amora"},
				{ID: "cob-caramelo", Name: "Cobertura Caramelo"},
				{ID: "cob-chocolate", Name: "Cobertura Chocolate"},
				{ID: "cob-leite-condensado", Name: "Cobertura Leite condensado"},
				{ID: "cob-maracuja", Name: "Cobertura Maracujá"},
				{ID: "cob-mel", Name: "Cobertura Mel"},
				{ID: "cob-menta", Name: "Cobertura Menta"},
				{ID: "cob-morango", Name: "Cobertura Morango"},
			},
		},
		{
			ID:          "frutas",
			Name:        "Frutas",
			Description: "Escolha até 2 frutas",
			Min:         0,
			Max:         2,
			Options: []domain.ToppingOption{
				{ID: "fru-abacaxi", Name: "Abacaxi"},
				{ID: "fru-banana", Name: "Banana"},
				{ID: "fru-kiwi", Name: "Kiwi"},
				{ID: "fru-manga", Name: "Manga"},
				{ID: "fru-morango", Name: "Morango"},
				{ID: "fru-uva", Name: "Uva"},
			},
		},
		{
			ID:          "complementos",
			Name:        "Complementos",
			Description: "Escolha até 4 complementos",
			Min:         0,
			Max:         4,
			Options: []domain.ToppingOption{
				{ID: "comp-amendoim", Name: "Amendoim"},
				{ID: "comp-aveia", Name: "Aveia"},
				{ID: "comp-castanha-caju", Name: "Castanha de caju"},
				{ID: "comp-chocoball", Name: "Chocoball"},
				{ID: "comp-confete", Name: "Confete"},
				{ID: "comp-creme-banana", Name: "Creme de banana"},
				{ID: "comp-creme-maracuja", Name: "Creme de mousse de maracujá"},
				{ID: "comp-creme-morango", Name: "Creme de morango"},
				{ID: "comp-farinha-cereais", Name: "Farinha de cereais"},
				{ID: "comp-gotas-chocolate", Name: "Gotas de chocolate"},
				{ID: "comp-granola", Name: "Granola"},
				{ID: "comp-leite-po", Name: "Leite em pó"},
				{ID: "comp-ovomaltine", Name: "Ovomaltine"},
				{ID: "comp-pacoca", Name: "Paçoca"},
				{ID: "comp-sucrilhos", Name: "Sucrilhos"},
			},
		},
		{
			ID:          "adicional-gratis",
			Name:        "Adicional gratuito",
			Description: "Escolha 1 adicional grátis no primeiro pedido",
			Min:         0,
			Max:         1,
			Options: []domain.ToppingOption{
				{ID: "add-bis", Name: "Bis (3 un) – Grátis 1º pedido"},
				{ID: "add-chantilly", Name: "Chantilly – Grátis 1º pedido"},
				{ID: "add-nutella", Name: "Nutella – Grátis 1º pedido"},
				{ID: "add-sorvete", Name: "1 bola de sorvete de creme – Grátis 1º pedido"},
				{ID: "add-creme-ninho", Name: "Creme de Ninho – Grátis 1º pedido"},
				{ID: "add-creme-oreo", Name: "Creme de Oreo – Grátis 1º pedido"},
				{ID: "add-kitkat", Name: "KitKat – Grátis 1º pedido"},
			},
		},
	}
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		// Pague 1, leve 2
		{
			ID:            "combo-300-2x",
			Name:          "2 Copos Açaí 300ml",
			Description:   "Promoção especial com entrega grátis na região.",
			CategoryID:    domain.CategoryPromoPague1Leve2,
			Price:         price("39.80"),
			PromoPrice:    promo("19.90"),
			VolumeML:      300,
			IsCombo:       true,
			Badge:         "Pague 1, leve 2",
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "combo-500-2x",
			Name:          "2 Copos Açaí 500ml",
			Description:   "Perfeito para dividir, com até 9 complementos por copo.",
			CategoryID:    domain.CategoryPromoPague1Leve2,
			Price:         price("43.80"),
			PromoPrice:    promo("22.90"),
			VolumeML:      500,
			IsCombo:       true,
			Badge:         "Pague 1, leve 2",
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "combo-700-2x",
			Name:          "2 Copos Açaí 700ml",
			Description:   "Serve bem 2 pessoas com fome de açaí.",
			CategoryID:    domain.CategoryPromoPague1Leve2,
			Price:         price("53.80"),
			PromoPrice:    promo("26.90"),
			VolumeML:      700,
			IsCombo:       true,
			Badge:         "Pague 1, leve 2",
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "combo-1000-2x",
			Name:          "2 Copos Açaí 1L",
			Description:   "Opção família com frete grátis na região.",
			CategoryID:    domain.CategoryPromoPague1Leve2,
			Price:         price("75.80"),
			PromoPrice:    promo("37.90"),
			VolumeML:      1000,
			IsCombo:       true,
			Badge:         "Pague 1, leve 2",
			ToppingGroups: baseToppingGroups(),
		},

		// Zero açúcar
		{
			ID:            "combo-300-2x-zero",
			Name:          "2 Copos Açaí 300ml ZERO",
			Description:   "Sem adição de açúcar, com até 9 complementos.",
			CategoryID:    domain.CategoryZeroAcucar,
			Price:         price("45.80"),
			PromoPrice:    promo("22.90"),
			VolumeML:      300,
			IsCombo:       true,
			IsZeroSugar:   true,
			Badge:         "Zero açúcar",
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "combo-500-2x-zero",
			Name:          "2 Copos Açaí 500ml ZERO",
			Description:   "Mais volume, mesmo cuidado no sabor e na dieta.",
			CategoryID:    domain.CategoryZeroAcucar,
			Price:         price("49.80"),
			PromoPrice:    promo("25.90"),
			VolumeML:      500,
			IsCombo:       true,
			IsZeroSugar:   true,
			Badge:         "Zero açúcar",
			ToppingGroups: baseToppingGroups(),
		},

		// Copos unitários tradicionais
		{
			ID:            "copo-300",
			Name:          "Copo Açaí 300ml",
			Description:   "Clássico da casa, cremoso e bem servido.",
			CategoryID:    domain.CategoryAcaiTradicional,
			Price:         price("19.90"),
			VolumeML:      300,
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "copo-500",
			Name:          "Copo Açaí 500ml",
			Description:   "Para quem gosta de caprichar no açaí.",
			CategoryID:    domain.CategoryAcaiTradicional,
			Price:         price("22.90"),
			VolumeML:      500,
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "copo-700",
			Name:          "Copo Açaí 700ml",
			Description:   "Serve bem quem tem fome de verdade.",
			CategoryID:    domain.CategoryAcaiTradicional,
			Price:         price("26.90"),
			VolumeML:      700,
			ToppingGroups: baseToppingGroups(),
		},
		{
			ID:            "copo-1000",
			Name:          "Copo Açaí 1L",
			Description:   "Para dividir na família ou matar a vontade sozinho.",
			CategoryID:    domain.CategoryAcaiTradicional,
			Price:         price("37.90"),
			VolumeML:      1000,
			ToppingGroups: baseToppingGroups(),
		},

		// Especial
		{
			ID:            "super-barca",
			Name:          "Super Barca Açaí 850g",
			Description:   "Até 2 pessoas, decoração especial e muitos complementos.",
			CategoryID:    domain.CategoryEspeciais,
			Price:         price("69.90"),
			PromoPrice:    promo("49.00"),
			VolumeML:      850,
			IsCombo:       true,
			Badge:         "Oferta especial",
			ToppingGroups: baseToppingGroups(),
		},
	}
}
