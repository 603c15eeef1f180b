package scoring

// Component ceilings. Each component is clamped independently before the
// grand total is clamped again.
const (
	CoreCapSingle      = 500
	CoreCapWithPartner = 460
	PartnerCap         = 40
	TransferabilityCap = 100
	AdditionalCap      = 600
	TotalCap           = 1200
)

// Mode selects between the single and with-partner point tables. The two
// table variants live side by side in one parameterized structure so they
// cannot drift apart independently.
type Mode int

const (
	ModeSingle Mode = iota
	ModeWithPartner
)

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	if m == ModeWithPartner {
		return "With accompanying partner"
	}
	return "Single applicant"
}

// CoreFactors holds the core human-capital points for the applicant.
type CoreFactors struct {
	Age          int `json:"age"`
	Education    int `json:"education"`
	Language     int `json:"language"`
	CanadianWork int `json:"canadian_work"`
	Subtotal     int `json:"subtotal"`
}

// PartnerFactors holds points from an accompanying partner's credentials.
// All zero unless the partner-factors gate is active.
type PartnerFactors struct {
	Education int `json:"education"`
	Language  int `json:"language"`
	Work      int `json:"work"`
	Subtotal  int `json:"subtotal"`
}

// AdditionalFactors holds the nomination, sibling, Canadian-study and
// French-proficiency bonuses.
type AdditionalFactors struct {
	Nomination    int `json:"nomination"`
	Sibling       int `json:"sibling"`
	CanadianStudy int `json:"canadian_study"`
	FrenchBonus   int `json:"french_bonus"`
	Subtotal      int `json:"subtotal"`
}

// Breakdown is the full scoring result: the grand total, the four capped
// component subtotals, and the leaf contributions retained for display.
type Breakdown struct {
	Mode            Mode              `json:"mode"`
	Core            CoreFactors       `json:"core"`
	Partner         PartnerFactors    `json:"partner"`
	Transferability int               `json:"transferability"`
	Additional      AdditionalFactors `json:"additional"`
	Total           int               `json:"total"`
}

func clampCap(v, cap int) int {
	if v > cap {
		return cap
	}
	return v
}
