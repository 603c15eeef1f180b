package profile

// MaxCLB is the upper bound of the language benchmark scale.
const MaxCLB = 10

// WorkYearsCap is the cap applied to work-experience years before scoring.
const WorkYearsCap = 5

// LanguageSkills holds the four-skill benchmark scores for one language.
// Each score is on the 0-10 CLB/NCLC scale.
type LanguageSkills struct {
	Speaking  int `json:"speaking"`
	Listening int `json:"listening"`
	Reading   int `json:"reading"`
	Writing   int `json:"writing"`
}

// AllAtLeast reports whether all four skills are at or above the benchmark.
func (l LanguageSkills) AllAtLeast(clb int) bool {
	return l.Speaking >= clb && l.Listening >= clb && l.Reading >= clb && l.Writing >= clb
}

// AllAtMost reports whether all four skills are at or below the benchmark.
func (l LanguageSkills) AllAtMost(clb int) bool {
	return l.Speaking <= clb && l.Listening <= clb && l.Reading <= clb && l.Writing <= clb
}

// Scores returns the four skill scores in speak/listen/read/write order.
func (l LanguageSkills) Scores() [4]int {
	return [4]int{l.Speaking, l.Listening, l.Reading, l.Writing}
}

// PartnerDetails mirrors the scorable subset of fields for an accompanying
// partner.
type PartnerDetails struct {
	Education         EducationLevel `json:"education"`
	CanadianWorkYears int            `json:"canadian_work_years"`
	Language          LanguageSkills `json:"language"`
}

// Profile is the structured record accumulated one field at a time as the
// interview proceeds. It is created with defaults when the interview starts,
// mutated by the script interpreter, and read immutably by the scoring
// engine.
type Profile struct {
	MaritalStatus       MaritalStatus      `json:"marital_status"`
	PartnerAccompanying bool               `json:"partner_accompanying"`
	PartnerCitizen      bool               `json:"partner_citizen"`
	Age                 int                `json:"age"`
	Education           EducationLevel     `json:"education"`
	CanadianCredential  CanadianCredential `json:"canadian_credential"`
	FirstLanguage       Language           `json:"first_language"`
	Primary             LanguageSkills     `json:"primary_language"`
	Secondary           LanguageSkills     `json:"secondary_language"`
	CanadianWorkYears   int                `json:"canadian_work_years"`
	ForeignWorkYears    int                `json:"foreign_work_years"`
	TradeCertificate    bool               `json:"trade_certificate"`
	ProvincialNominee   bool               `json:"provincial_nominee"`
	SiblingInCanada     bool               `json:"sibling_in_canada"`
	Category            Category           `json:"category"`
	Partner             PartnerDetails     `json:"partner"`
}

// Default returns the canonical all-default profile used at interview start.
func Default() Profile {
	return Profile{
		MaritalStatus: Single,
		Category:      CategoryGeneral,
	}
}

// ClampWorkYears clamps a work-experience value to [0, WorkYearsCap].
func ClampWorkYears(years int) int {
	if years < 0 {
		return 0
	}
	if years > WorkYearsCap {
		return WorkYearsCap
	}
	return years
}

// ClampCLB clamps a benchmark score to [0, MaxCLB].
func ClampCLB(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxCLB {
		return MaxCLB
	}
	return score
}
