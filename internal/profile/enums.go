package profile

// MaritalStatus is the applicant's marital status.
type MaritalStatus int

const (
	Single MaritalStatus = iota
	Married
	CommonLaw
)

// DisplayName returns a human-readable label for the marital status.
func (m MaritalStatus) DisplayName() string {
	switch m {
	case Single:
		return "Single"
	case Married:
		return "Married"
	case CommonLaw:
		return "Common-law"
	default:
		return "Unknown"
	}
}

// EducationLevel is an education attainment level, ordered from lowest
// to highest.
type EducationLevel int

const (
	EduLessThanSecondary EducationLevel = iota
	EduSecondary
	EduOneYearPostSecondary
	EduTwoYearPostSecondary
	EduBachelorOrThreeYear
	EduTwoOrMoreCredentials
	EduMastersOrProfessional
	EduDoctorate
)

// AllEducationLevels returns all education levels in ascending order.
func AllEducationLevels() []EducationLevel {
	return []EducationLevel{
		EduLessThanSecondary,
		EduSecondary,
		EduOneYearPostSecondary,
		EduTwoYearPostSecondary,
		EduBachelorOrThreeYear,
		EduTwoOrMoreCredentials,
		EduMastersOrProfessional,
		EduDoctorate,
	}
}

// DisplayName returns a human-readable label for the education level.
func (e EducationLevel) DisplayName() string {
	switch e {
	case EduLessThanSecondary:
		return "Less than secondary school"
	case EduSecondary:
		return "Secondary diploma (high school)"
	case EduOneYearPostSecondary:
		return "One-year post-secondary program"
	case EduTwoYearPostSecondary:
		return "Two-year post-secondary program"
	case EduBachelorOrThreeYear:
		return "Bachelor's degree or 3+ year program"
	case EduTwoOrMoreCredentials:
		return "Two or more credentials (one 3+ years)"
	case EduMastersOrProfessional:
		return "Master's or professional degree"
	case EduDoctorate:
		return "Doctorate (PhD)"
	default:
		return "Unknown"
	}
}

// CanadianCredential is the length of a Canadian post-secondary credential.
type CanadianCredential int

const (
	CredNone CanadianCredential = iota
	CredOneOrTwoYear
	CredThreeYearPlus
)

// DisplayName returns a human-readable label for the credential length.
func (c CanadianCredential) DisplayName() string {
	switch c {
	case CredNone:
		return "None"
	case CredOneOrTwoYear:
		return "1-2 year credential"
	case CredThreeYearPlus:
		return "3+ year credential"
	default:
		return "Unknown"
	}
}

// Language is an official language.
type Language int

const (
	English Language = iota
	French
)

// DisplayName returns a human-readable label for the language.
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case French:
		return "French"
	default:
		return "Unknown"
	}
}

// Category tags the applicant's occupation group for category-based draws.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryTrades      Category = "trades"
	CategoryHealthcare  Category = "healthcare"
	CategorySTEM        Category = "stem"
	CategoryTransport   Category = "transport"
	CategoryAgriculture Category = "agriculture"
)

// AllCategories returns all occupation categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryTrades,
		CategoryHealthcare,
		CategorySTEM,
		CategoryTransport,
		CategoryAgriculture,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryTrades:
		return "Skilled Trades"
	case CategoryHealthcare:
		return "Healthcare"
	case CategorySTEM:
		return "STEM"
	case CategoryTransport:
		return "Transport"
	case CategoryAgriculture:
		return "Agriculture & Agri-Food"
	default:
		return string(c)
	}
}
