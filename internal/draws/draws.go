// Package draws holds the historical invitation-round reference data and
// the threshold comparison against it.
package draws

import "github.com/abhisek/maplecheck/internal/profile"

// Stream identifiers. Occupation streams share their tokens with
// profile.Category so a declared category matches its stream directly.
const (
	StreamGeneral     = string(profile.CategoryGeneral)
	StreamTrades      = string(profile.CategoryTrades)
	StreamHealthcare  = string(profile.CategoryHealthcare)
	StreamSTEM        = string(profile.CategorySTEM)
	StreamTransport   = string(profile.CategoryTransport)
	StreamAgriculture = string(profile.CategoryAgriculture)

	// Condition-unlocked streams.
	StreamCEC    = "canadian-experience"
	StreamPNP    = "provincial-nominee"
	StreamFrench = "french-proficiency"
)

// Draw is one historical invitation round: a stream, its score cutoff,
// and when it happened. Read-only reference data.
type Draw struct {
	Stream string `yaml:"stream" json:"stream"`
	Label  string `yaml:"label" json:"label"`
	Cutoff int    `yaml:"cutoff" json:"cutoff"`
	Date   string `yaml:"date" json:"date"`
}

// StreamDisplayName returns a human-readable label for a stream token.
func StreamDisplayName(stream string) string {
	switch stream {
	case StreamCEC:
		return "Canadian Experience Class"
	case StreamPNP:
		return "Provincial Nominee Program"
	case StreamFrench:
		return "French-language proficiency"
	default:
		return profile.Category(stream).DisplayName()
	}
}

// seed is the built-in reference set, most recent first. An external YAML
// file can replace it (see Load).
var seed = []Draw{
	{Stream: StreamGeneral, Label: "General round #344", Cutoff: 529, Date: "2026-07-07"},
	{Stream: StreamCEC, Label: "CEC round #343", Cutoff: 518, Date: "2026-06-23"},
	{Stream: StreamHealthcare, Label: "Healthcare round #342", Cutoff: 463, Date: "2026-06-04"},
	{Stream: StreamPNP, Label: "PNP round #341", Cutoff: 739, Date: "2026-05-26"},
	{Stream: StreamFrench, Label: "French proficiency round #340", Cutoff: 410, Date: "2026-05-13"},
	{Stream: StreamGeneral, Label: "General round #339", Cutoff: 535, Date: "2026-04-28"},
	{Stream: StreamSTEM, Label: "STEM round #338", Cutoff: 491, Date: "2026-04-11"},
	{Stream: StreamTrades, Label: "Trades round #337", Cutoff: 433, Date: "2026-03-26"},
	{Stream: StreamCEC, Label: "CEC round #336", Cutoff: 521, Date: "2026-03-12"},
	{Stream: StreamTransport, Label: "Transport round #335", Cutoff: 435, Date: "2026-02-27"},
	{Stream: StreamAgriculture, Label: "Agri-food round #334", Cutoff: 437, Date: "2026-02-13"},
	{Stream: StreamGeneral, Label: "General round #333", Cutoff: 542, Date: "2026-01-23"},
	{Stream: StreamFrench, Label: "French proficiency round #332", Cutoff: 379, Date: "2026-01-09"},
}

// Seed returns a copy of the built-in reference set.
func Seed() []Draw {
	out := make([]Draw, len(seed))
	copy(out, seed)
	return out
}
