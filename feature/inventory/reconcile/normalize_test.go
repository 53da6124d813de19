package reconcile

import (
	"testing"

	"inventory-sync/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_NormalizeModel(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Notebook with size", "HP ProBook 4 G1iR 16 inch Notebook PC", "ProBook 4 G1iR"},
		{"Size between model tokens", "HP EliteBook 650 15.6 inch G9 Notebook PC", "EliteBook 650 G9"},
		{"Desktop", "HP Elite SFF 800 G9 Desktop PC", "Elite SFF 800 G9"},
		{"No decorations", "HP ProDesk 400 G6 SFF", "ProDesk 400 G6 SFF"},
		{"Empty", "", "Unknown Model"},
		{"Lowercase prefix", "hp EliteDesk 800 G5 Desktop PC", "EliteDesk 800 G5"},
		{"No vendor prefix", "ThinkPad X1 Carbon", "ThinkPad X1 Carbon"},
		{"Whitespace only decorations removed", "HP Notebook PC", "Notebook PC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeModel(tt.raw))
		})
	}
}

func TestNormalizer_NormalizeModel_Deterministic(t *testing.T) {
	n := NewNormalizer()
	raw := "HP EliteBook 650 15.6 inch G9 Notebook PC"
	first := n.NormalizeModel(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, n.NormalizeModel(raw))
	}
}

func TestNormalizer_CustomVendorPrefix(t *testing.T) {
	n := NewNormalizer("Lenovo")
	assert.Equal(t, "ThinkCentre M720q", n.NormalizeModel("Lenovo ThinkCentre M720q"))
	// The default HP prefix is not configured here, so it stays.
	assert.Equal(t, "HP ProDesk 400 G6 SFF", n.NormalizeModel("HP ProDesk 400 G6 SFF"))
}

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()

	record := n.Normalize(models.SourceDevice{
		Serial:       "SN1",
		Manufacturer: "HP",
		Model:        "HP ProDesk 400 G6 SFF",
		Name:         "WS-01",
	})

	assert.Equal(t, "SN1", record.Serial)
	assert.Equal(t, "HP", record.Manufacturer)
	assert.Equal(t, "ProDesk 400 G6 SFF", record.Model)
	assert.Equal(t, "HP ProDesk 400 G6 SFF", record.RawModel)
	assert.Equal(t, "WS-01", record.Name)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Two words", "Hewlett Packard", "hewlett-packard"},
		{"Empty", "", ""},
		{"Single word", "HP", "hp"},
		{"Multiple spaces", "ProDesk  400   G6", "prodesk-400-g6"},
		{"Tabs and spaces", "Elite\t SFF", "elite-sff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.text))
		})
	}
}
