package categories

import (
	"testing"

	"kumbara/internal/models"
)

func TestCategorize_DefaultTable(t *testing.T) {
	c := Default()

	tests := []struct {
		description string
		want        string
	}{
		{"Kira ödemesi", "Ev & Faturalar"},
		{"Turkcell hat", "İletişim"},
		{"Taksi", "Ulaşım"},
		{"Sinema bileti", "Eğlence"},
		{"Eczane", "Sağlık"},
		{"Kurs ücreti", "Eğitim"},
		{"Kışlık mont", "Giyim"},
		{"market", "Gıda & Market"},
		{"MARKET", "Gıda & Market"},
		{"   market   ", "Gıda & Market"},
		{"Maaş", "Diğer"},
		{"xyz", "Diğer"},
		{"", "Diğer"},
		{"   ", "Diğer"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := c.Categorize(tt.description); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestCategorize_EarlierCategoryWinsOnOverlap(t *testing.T) {
	c := Default()

	// "migros" (Gıda & Market) and "alışveriş" (Giyim) both match.
	if got := c.Categorize("Migros alışverişi"); got != "Gıda & Market" {
		t.Errorf("expected Gıda & Market, got %q", got)
	}
	// "fatura" (Ev & Faturalar) is declared before "turkcell" (İletişim).
	if got := c.Categorize("Turkcell faturası"); got != "Ev & Faturalar" {
		t.Errorf("expected Ev & Faturalar, got %q", got)
	}
}

func TestCategorize_TurkishDottedCapitalI(t *testing.T) {
	c := Default()

	// İ lower-cases to plain i, so capitalised Turkish spellings still match.
	tests := map[string]string{
		"İnternet paketi": "İletişim",
		"İNTERNET":        "İletişim",
		"İlaç":            "Sağlık",
	}
	for description, want := range tests {
		if got := c.Categorize(description); got != want {
			t.Errorf("Categorize(%q) = %q, want %q", description, got, want)
		}
	}
}

func TestCategorize_CustomTable(t *testing.T) {
	table := []models.Category{
		{Name: "Other", Color: "#000000", Icon: "?"},
		{Name: "Coffee", Keywords: []string{"Kahve"}, Color: "#111111", Icon: "c"},
		{Name: "Drinks", Keywords: []string{"kahve", "çay"}, Color: "#222222", Icon: "d"},
	}
	c, err := New(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("keywords_from_both_categories", func(t *testing.T) {
		if got := c.Categorize("kahve ve çay"); got != "Coffee" {
			t.Errorf("expected Coffee, got %q", got)
		}
		if got := c.Categorize("çay ve kahve"); got != "Coffee" {
			t.Errorf("expected Coffee regardless of word order, got %q", got)
		}
	})

	t.Run("later_category_without_overlap", func(t *testing.T) {
		if got := c.Categorize("demli çay"); got != "Drinks" {
			t.Errorf("expected Drinks, got %q", got)
		}
	})

	t.Run("fallback_evaluated_last_despite_position", func(t *testing.T) {
		if got := c.Categorize("KAHVE"); got != "Coffee" {
			t.Errorf("expected Coffee, got %q", got)
		}
		if got := c.Categorize("su"); got != "Other" {
			t.Errorf("expected Other, got %q", got)
		}
	})

	t.Run("names_keep_declared_order", func(t *testing.T) {
		names := c.AllCategoryNames()
		want := []string{"Other", "Coffee", "Drinks"}
		if len(names) != len(want) {
			t.Fatalf("expected %d names, got %v", len(want), names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})
}

func TestNew_InvalidTables(t *testing.T) {
	tests := []struct {
		name  string
		table []models.Category
	}{
		{"empty", nil},
		{"no_fallback", []models.Category{{Name: "A", Keywords: []string{"a"}}}},
		{"two_fallbacks", []models.Category{{Name: "A"}, {Name: "B"}}},
		{"duplicate_name", []models.Category{{Name: "A", Keywords: []string{"a"}}, {Name: "A"}}},
		{"blank_name", []models.Category{{Name: " "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.table); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	if got := c.ColorOf("Ulaşım"); got != "#8B5CF6" {
		t.Errorf("expected #8B5CF6, got %s", got)
	}
	if got := c.IconOf("Ulaşım"); got != "🚗" {
		t.Errorf("expected 🚗, got %s", got)
	}
	if got := c.ColorOf("does not exist"); got != "#6B7280" {
		t.Errorf("expected fallback color, got %s", got)
	}
	if got := c.IconOf(""); got != "📋" {
		t.Errorf("expected fallback icon, got %s", got)
	}

	names := c.AllCategoryNames()
	if len(names) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(names))
	}
	if names[0] != "Gıda & Market" || names[8] != "Diğer" {
		t.Errorf("unexpected order: %v", names)
	}
	if c.FallbackName() != "Diğer" {
		t.Errorf("expected Diğer fallback, got %s", c.FallbackName())
	}
	if !c.IsKnown("Giyim") || c.IsKnown("giyim") {
		t.Error("IsKnown should match exact names only")
	}
}

func TestCategories_ReturnsCopies(t *testing.T) {
	c := Default()

	cats := c.Categories()
	cats[0].Keywords[0] = "tampered"
	cats[0].Name = "tampered"

	if got := c.Categorize("market"); got != "Gıda & Market" {
		t.Errorf("categorizer state changed through returned slice: got %q", got)
	}
	if c.Categories()[0].Keywords[0] != "market" {
		t.Error("keywords changed through returned slice")
	}
}
