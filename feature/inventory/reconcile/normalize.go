package reconcile

import (
	"regexp"
	"strings"

	"inventory-sync/feature/inventory/models"
)

// UnknownModel is the sentinel label for devices reporting no model string.
const UnknownModel = "Unknown Model"

// UnknownManufacturer is the fallback name for devices reporting no manufacturer.
const UnknownManufacturer = "Unknown"

var (
	sizeDescriptorRe = regexp.MustCompile(`(?i)\s+\d+(\.\d+)?\s+inch`)
	notebookSuffixRe = regexp.MustCompile(`(?i)\s+Notebook PC`)
	desktopSuffixRe  = regexp.MustCompile(`(?i)\s+Desktop PC`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Normalizer canonicalizes raw source device records. It is pure: the same
// input always yields the same output.
type Normalizer struct {
	vendorPrefixes []*regexp.Regexp
}

// NewNormalizer creates a normalizer stripping the given leading vendor-name
// tokens from model strings. Without arguments it strips the "HP" prefix,
// matching the vendor fleet the source feed reports.
func NewNormalizer(vendorPrefixes ...string) *Normalizer {
	if len(vendorPrefixes) == 0 {
		vendorPrefixes = []string{"HP"}
	}
	res := make([]*regexp.Regexp, 0, len(vendorPrefixes))
	for _, prefix := range vendorPrefixes {
		res = append(res, regexp.MustCompile(`(?i)^`+regexp.QuoteMeta(prefix)+`\s+`))
	}
	return &Normalizer{vendorPrefixes: res}
}

// NormalizeModel derives a clean device-type label from a noisy vendor model
// string. Rules apply in fixed order, each on the result of the previous one:
// the vendor prefix must be stripped before the size descriptor and the
// "Notebook PC"/"Desktop PC" suffixes, otherwise it could interfere with the
// later matches. An empty input yields UnknownModel.
func (n *Normalizer) NormalizeModel(raw string) string {
	if raw == "" {
		return UnknownModel
	}

	cleaned := raw
	for _, re := range n.vendorPrefixes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = sizeDescriptorRe.ReplaceAllString(cleaned, "")
	cleaned = notebookSuffixRe.ReplaceAllString(cleaned, "")
	cleaned = desktopSuffixRe.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// Normalize converts a raw source row into a DeviceRecord, deriving the
// normalized model label and keeping the raw model string for traceability.
func (n *Normalizer) Normalize(d models.SourceDevice) models.DeviceRecord {
	return models.DeviceRecord{
		Serial:       d.Serial,
		Manufacturer: d.Manufacturer,
		Model:        n.NormalizeModel(d.Model),
		RawModel:     d.Model,
		Name:         d.Name,
	}
}

// Slugify produces a URL-safe identifier from a display name: runs of
// whitespace collapse to a single dash and the result is lowercased. No other
// characters are escaped; names are expected to be plain vendor labels.
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(whitespaceRe.ReplaceAllString(text, "-"))
}
