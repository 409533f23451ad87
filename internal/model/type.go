package model

import (
	"encoding/json"
	"strings"
)

// Type is the kind of a document. It drives the preview strategy.
type Type string

const (
	TypePDF   Type = "pdf"
	TypeDOCX  Type = "docx"
	TypeDOC   Type = "doc"
	TypeXLSX  Type = "xlsx"
	TypeXLS   Type = "xls"
	TypeTXT   Type = "txt"
	TypeOther Type = "other"
)

// PreviewStrategy names how a document type is previewed.
type PreviewStrategy string

const (
	// StrategyPaged renders page images through the external renderer.
	StrategyPaged PreviewStrategy = "paged"
	// StrategyText shows Content directly.
	StrategyText PreviewStrategy = "text"
	// StrategySummary shows Content as a summary card with an "open externally" action.
	StrategySummary PreviewStrategy = "summary"
	// StrategyUnavailable shows a "preview unavailable" card.
	StrategyUnavailable PreviewStrategy = "unavailable"
)

// TypeProfile is everything presentation and preview need to know about a type.
type TypeProfile struct {
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Strategy       PreviewStrategy `json:"strategy"`
	SupportsPaging bool            `json:"supports_paging"`
}

var profiles = map[Type]TypeProfile{
	TypePDF:   {Icon: "file-text", Color: "red", Strategy: StrategyPaged, SupportsPaging: true},
	TypeDOCX:  {Icon: "file-text", Color: "blue", Strategy: StrategySummary},
	TypeDOC:   {Icon: "file-text", Color: "blue", Strategy: StrategySummary},
	TypeXLSX:  {Icon: "file-spreadsheet", Color: "green", Strategy: StrategySummary},
	TypeXLS:   {Icon: "file-spreadsheet", Color: "green", Strategy: StrategySummary},
	TypeTXT:   {Icon: "file", Color: "gray", Strategy: StrategyText},
	TypeOther: {Icon: "file", Color: "gray", Strategy: StrategyUnavailable},
}

// Types lists every known type in a stable order.
func Types() []Type {
	return []Type{TypePDF, TypeDOCX, TypeDOC, TypeXLSX, TypeXLS, TypeTXT, TypeOther}
}

// ParseType normalizes s into a Type. Case, surrounding whitespace and a leading
// dot are ignored; unrecognized values map to TypeOther.
func ParseType(s string) Type {
	t, ok := LookupType(s)
	if !ok {
		return TypeOther
	}
	return t
}

// LookupType is ParseType that also reports whether s named a known type.
func LookupType(s string) (Type, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	t := Type(s)
	if _, ok := profiles[t]; !ok {
		return TypeOther, false
	}
	return t, true
}

// Profile returns the profile for t; unknown types get the TypeOther profile.
func (t Type) Profile() TypeProfile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return profiles[TypeOther]
}

// Valid reports whether t is one of the enumerated types.
func (t Type) Valid() bool {
	_, ok := profiles[t]
	return ok
}

// UnmarshalJSON applies ParseType so decoded documents always carry a known type.
func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}
