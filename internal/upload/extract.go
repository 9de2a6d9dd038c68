// Package upload implements the multipart document intake endpoint and the
// lightweight text extraction applied to incoming files.
package upload

import "strings"

// Placeholder bodies stored for formats we recognise but do not parse.
const (
	excelPlaceholder = "Excel file uploaded (preview disabled)."
	pdfPlaceholder   = "PDF uploaded (text extraction not available in lightweight mode)."
)

// ExtractText derives the stored extracted_text for a file based on its name.
// CSV and TSV are decoded lossily, invalid UTF-8 bytes are dropped rather
// than replaced. The second return names the extraction kind for metrics:
// csv, excel, pdf or none. A nil pointer means no extractor matched.
func ExtractText(filename string, raw []byte) (*string, string) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".tsv"):
		text := strings.ToValidUTF8(string(raw), "")
		return &text, "csv"
	case strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls"):
		text := excelPlaceholder
		return &text, "excel"
	case strings.HasSuffix(lower, ".pdf"):
		text := pdfPlaceholder
		return &text, "pdf"
	}
	return nil, "none"
}

// ParseTags splits a comma separated tag string, trimming whitespace and
// dropping empties. Always returns a non-nil slice so it marshals as [].
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Preview returns the first n runes of s.
func Preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
