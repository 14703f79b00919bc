// Package catalog holds the static bilingual restaurant content: contact
// info, opening hours and the menu. Everything here is initialized at
// process start and never mutated, so handlers can read it without locks.
package catalog

// DefaultLang is the fallback for missing or unsupported language codes.
const DefaultLang = "en"

var supported = map[string]bool{"en": true, "de": true}

// Lang normalizes a requested language code. Anything outside the two
// shipped locales falls back to English instead of producing template
// lookup misses.
func Lang(code string) string {
	if supported[code] {
		return code
	}
	return DefaultLang
}

type MenuItem struct {
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	Availability string `json:"availability,omitempty"`
}

type Restaurant struct {
	Name        string                       `json:"name"`
	Tagline     map[string]string            `json:"tagline"`
	Description map[string]string            `json:"description"`
	Address     string                       `json:"address"`
	Phone       string                       `json:"phone"`
	Email       string                       `json:"email"`
	Hours       map[string]map[string]string `json:"hours"`
}

// Days gives templates a fixed weekday order for the hours table.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var Info = Restaurant{
	Name: "Yí Restaurant",
	Tagline: map[string]string{
		"en": "Authentic Seafood & Paella Experience",
		"de": "Authentische Meeresfrüchte & Paella Erlebnis",
	},
	Description: map[string]string{
		"en": "Discover the finest seafood cuisine with our signature paellas, fresh fish, and traditional Spanish flavors in an elegant atmosphere.",
		"de": "Entdecken Sie die feinste Meeresfrüchteküche mit unseren charakteristischen Paellas, frischem Fisch und traditionellen spanischen Aromen in eleganter Atmosphäre.",
	},
	Address: "Yí Restaurant Cerca de Jorge Ramírez de Arellano, 9 C. Félix Arce Lugos San German, 00683",
	Phone:   "+34 (787) 413-0224",
	Email:   "info@yirestaurant.com",
	Hours: map[string]map[string]string{
		"en": {
			"monday":    "Closed",
			"tuesday":   "6:00 PM - 11:00 PM",
			"wednesday": "6:00 PM - 11:00 PM",
			"thursday":  "6:00 PM - 11:00 PM",
			"friday":    "6:00 PM - 11:30 PM",
			"saturday":  "1:00 PM - 11:30 PM",
			"sunday":    "1:00 PM - 10:00 PM",
		},
		"de": {
			"monday":    "Geschlossen",
			"tuesday":   "18:00 - 23:00",
			"wednesday": "18:00 - 23:00",
			"thursday":  "18:00 - 23:00",
			"friday":    "18:00 - 23:30",
			"saturday":  "13:00 - 23:30",
			"sunday":    "13:00 - 22:00",
		},
	},
}

// Menu is keyed by category ("main_dishes", "sides"), then language code.
var Menu = map[string]map[string][]MenuItem{
	"main_dishes": {
		"en": {
			{Name: "Salmon", Price: 28, Description: "8oz salmon fillet sautéed with olive oil, Caribbean spices and lemon zest", Availability: "Available"},
			{Name: "Sea Bream", Price: 28, Description: "10oz fish fillet sautéed with olive oil and fresh herbs", Availability: "Subject to availability"},
			{Name: "Cod Fillet", Price: 28, Description: "8oz cod fillet sautéed with fresh herbs and aromatics", Availability: "Subject to availability"},
			{Name: "Sea Bass (per pound)", Price: 0, Description: "Sea bass fillets", Availability: "Subject to availability"},
			{Name: "Louisianna Paella", Price: 28, Description: "Haitian paella with chicken, sausage, shrimp, prawns", Availability: "Available"},
		},
		"de": {
			{Name: "Lachs", Price: 28, Description: "220g Lachsfilet sautiert mit Olivenöl, karibischen Gewürzen und Zitronenschale", Availability: "Verfügbar"},
			{Name: "Goldbrasse", Price: 28, Description: "280g Fischfilet sautiert mit Olivenöl und frischen Kräutern", Availability: "Nach Verfügbarkeit"},
			{Name: "Kabeljaufilet", Price: 28, Description: "220g Kabeljaufilet sautiert mit frischen Kräutern und Aromaten", Availability: "Nach Verfügbarkeit"},
			{Name: "Seebarsch (pro Pfund)", Price: 0, Description: "Seebarschfilets", Availability: "Nach Verfügbarkeit"},
			{Name: "Louisiana Paella", Price: 28, Description: "Haitianische Paella mit Hähnchen, Wurst, Garnelen, Langustinen", Availability: "Verfügbar"},
		},
	},
	"sides": {
		"en": {
			{Name: "Jasmine Rice", Price: 6, Description: "With cranberry & almonds"},
			{Name: "Djon Djon Rice", Price: 6, Description: "Haitian rice"},
			{Name: "Creamy Vegetables", Price: 6, Description: "Seasonal vegetables"},
			{Name: "Mashed Potatoes", Price: 6, Description: "Creamy mashed potatoes"},
			{Name: "Sautéed Vegetables", Price: 7, Description: "Fresh seasonal vegetables"},
			{Name: "Tostones", Price: 5, Description: "Fried plantains"},
			{Name: "Almonds in Syrup", Price: 5, Description: "Sweet almond dessert"},
			{Name: "French Fries", Price: 5, Description: "Classic french fries"},
		},
		"de": {
			{Name: "Jasminreis", Price: 6, Description: "Mit Cranberry & Mandeln"},
			{Name: "Djon Djon Reis", Price: 6, Description: "Haitianischer Reis"},
			{Name: "Cremiges Gemüse", Price: 6, Description: "Saisonales Gemüse"},
			{Name: "Kartoffelpüree", Price: 6, Description: "Cremiges Kartoffelpüree"},
			{Name: "Sautiertes Gemüse", Price: 7, Description: "Frisches saisonales Gemüse"},
			{Name: "Tostones", Price: 5, Description: "Gebratene Kochbananen"},
			{Name: "Mandeln in Sirup", Price: 5, Description: "Süße Mandelnachspeise"},
			{Name: "Pommes Frites", Price: 5, Description: "Klassische Pommes Frites"},
		},
	},
}
