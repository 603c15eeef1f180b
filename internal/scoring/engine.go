package scoring

import "github.com/abhisek/maplecheck/internal/profile"

// PartnerFactorsActive reports whether the partner-factors gate is on:
// the applicant is not single, the partner is accompanying, and the
// partner is not already a citizen or permanent resident.
func PartnerFactorsActive(p profile.Profile) bool {
	return p.MaritalStatus != profile.Single &&
		p.PartnerAccompanying &&
		!p.PartnerCitizen
}

// modeFor returns the table mode selected by the partner-factors gate.
func modeFor(p profile.Profile) Mode {
	if PartnerFactorsActive(p) {
		return ModeWithPartner
	}
	return ModeSingle
}

// Score computes the full breakdown for a finished profile. It is a pure
// function: every lookup has a zero fallback, so any well-formed profile
// scores without error, and repeated calls on the same profile yield
// identical output.
func Score(p profile.Profile) Breakdown {
	mode := modeFor(p)

	core := CoreFactors{
		Age:          agePointsFor(p.Age, mode),
		Education:    educationPointsFor(p.Education, mode),
		Language:     languagePointsFor(p.Primary, mode),
		CanadianWork: canadianWorkPointsFor(p.CanadianWorkYears, mode),
	}
	coreCap := CoreCapSingle
	if mode == ModeWithPartner {
		coreCap = CoreCapWithPartner
	}
	core.Subtotal = clampCap(core.Age+core.Education+core.Language+core.CanadianWork, coreCap)

	var partner PartnerFactors
	if mode == ModeWithPartner {
		partner = partnerFactorsFor(p.Partner)
	}

	transfer := transferabilityFor(p)
	additional := additionalFor(p)

	total := core.Subtotal + partner.Subtotal + transfer + additional.Subtotal

	return Breakdown{
		Mode:            mode,
		Core:            core,
		Partner:         partner,
		Transferability: transfer,
		Additional:      additional,
		Total:           clampCap(total, TotalCap),
	}
}

func agePointsFor(age int, mode Mode) int {
	switch {
	case age >= ageBandLow && age <= ageBandHigh:
		return ageMax.at(mode)
	case age >= ageTaperFrom && age < ageFloor:
		return ageTaperStart.at(mode) - ageTaperSlope.at(mode)*(age-ageTaperFrom)
	default:
		if pts, ok := agePoints[age]; ok {
			return pts.at(mode)
		}
		return 0
	}
}

func educationPointsFor(level profile.EducationLevel, mode Mode) int {
	if pts, ok := educationPoints[level]; ok {
		return pts.at(mode)
	}
	return 0
}

// languagePointsFor sums the tier points of all four primary skills.
func languagePointsFor(skills profile.LanguageSkills, mode Mode) int {
	total := 0
	for _, clb := range skills.Scores() {
		total += skillPoints(clb, mode)
	}
	return total
}

func skillPoints(clb int, mode Mode) int {
	for _, tier := range languageTierPoints {
		if clb >= tier.minCLB {
			return tier.points.at(mode)
		}
	}
	return 0
}

func canadianWorkPointsFor(years int, mode Mode) int {
	return canadianWorkPoints[profile.ClampWorkYears(years)].at(mode)
}

func partnerFactorsFor(d profile.PartnerDetails) PartnerFactors {
	f := PartnerFactors{
		Education: partnerEducationPoints[d.Education],
		Work:      partnerWorkPoints[profile.ClampWorkYears(d.CanadianWorkYears)],
	}
	for _, clb := range d.Language.Scores() {
		f.Language += partnerSkillPoints(clb)
	}
	f.Subtotal = clampCap(f.Education+f.Language+f.Work, PartnerCap)
	return f
}

func partnerSkillPoints(clb int) int {
	for _, tier := range partnerLanguageTiers {
		if clb >= tier.minCLB {
			return tier.points
		}
	}
	return 0
}

// transferabilityFor awards the combination bonuses. They apply only under
// uniform high fluency: all four primary skills in the top tier at once.
func transferabilityFor(p profile.Profile) int {
	if !p.Primary.AllAtLeast(clbHigh) {
		return 0
	}

	total := 0
	switch {
	case p.Education >= profile.EduTwoOrMoreCredentials:
		total += transferEducationHigh
	case p.Education > profile.EduLessThanSecondary:
		total += transferEducationBase
	}
	switch {
	case p.ForeignWorkYears >= transferForeignHighAt:
		total += transferForeignHigh
	case p.ForeignWorkYears > 0:
		total += transferForeignBase
	}
	return clampCap(total, TransferabilityCap)
}

func additionalFor(p profile.Profile) AdditionalFactors {
	var f AdditionalFactors

	if p.ProvincialNominee {
		f.Nomination = nominationBonus
	}
	if p.SiblingInCanada {
		f.Sibling = siblingBonus
	}
	switch p.CanadianCredential {
	case profile.CredOneOrTwoYear:
		f.CanadianStudy = canadianStudyShort
	case profile.CredThreeYearPlus:
		f.CanadianStudy = canadianStudyLong
	}
	f.FrenchBonus = frenchBonusFor(p)

	f.Subtotal = clampCap(f.Nomination+f.Sibling+f.CanadianStudy+f.FrenchBonus, AdditionalCap)
	return f
}

// frenchBonusFor awards the second-official-language bonus. It requires a
// uniformly strong secondary language; the size then depends on the
// primary language being uniformly moderate (larger) or uniformly weak
// (smaller). A mixed primary state earns nothing.
func frenchBonusFor(p profile.Profile) int {
	if !p.Secondary.AllAtLeast(frenchSecondaryCLB) {
		return 0
	}
	if p.Primary.AllAtLeast(frenchPrimaryModCLB) {
		return frenchBonusStrong
	}
	if p.Primary.AllAtMost(frenchPrimaryLowCLB) {
		return frenchBonusWeak
	}
	return 0
}
