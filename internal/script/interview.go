package script

import "github.com/abhisek/maplecheck/internal/profile"

// Fluency tiers map one self-assessed answer to all four benchmark scores,
// the custom-mutation steps below derive speak/listen/read/write from them.
const (
	fluencyNative       = "native"
	fluencyFluent       = "fluent"
	fluencyIntermediate = "intermediate"
	fluencyBasic        = "basic"
	fluencyNone         = "none"
	fluencyModerate     = "moderate"
	fluencyStrong       = "strong"
)

func fluencyCLB(token string) int {
	switch token {
	case fluencyNative:
		return 10
	case fluencyFluent, fluencyStrong:
		return 9
	case fluencyIntermediate, fluencyModerate:
		return 6
	case fluencyBasic:
		return 4
	default:
		return 0
	}
}

func uniformSkills(clb int) profile.LanguageSkills {
	return profile.LanguageSkills{Speaking: clb, Listening: clb, Reading: clb, Writing: clb}
}

func setPrimaryFluency(p *profile.Profile, value string) {
	p.Primary = uniformSkills(fluencyCLB(value))
}

func setSecondaryFluency(p *profile.Profile, value string) {
	clb := fluencyCLB(value)
	if value == fluencyStrong {
		// Strong second-language ability maps to the NCLC 7 band required
		// for the French-proficiency bonus and stream.
		clb = 8
	}
	if value == fluencyModerate {
		clb = 5
	}
	p.Secondary = uniformSkills(clb)
}

func setPartnerFluency(p *profile.Profile, value string) {
	p.Partner.Language = uniformSkills(fluencyCLB(value))
}

func yesNo() []Option {
	return []Option{
		{Label: "Yes", Value: profile.TokenYes},
		{Label: "No", Value: profile.TokenNo},
	}
}

// interviewSteps is the authored interview. Index order supplies the
// implicit fall-through; jumps are by symbolic ID only.
var interviewSteps = []Step{
	{
		ID:     "intro",
		Kind:   KindStatement,
		Prompt: "Welcome! I'll ask you a few questions about your background, then estimate your Express Entry score.",
		Detail: "Answer honestly — nothing leaves this terminal.",
	},
	{
		ID:     "marital",
		Kind:   KindChoice,
		Prompt: "What is your marital status?",
		Field:  profile.FieldMaritalStatus,
		Options: []Option{
			{Label: "Single", Value: profile.TokenSingle, Dest: "age"},
			{Label: "Married", Value: profile.TokenMarried},
			{Label: "Common-law", Value: profile.TokenCommonLaw},
		},
	},
	{
		ID:     "partner-accompanying",
		Kind:   KindChoice,
		Prompt: "Will your spouse or partner come with you to Canada?",
		Field:  profile.FieldPartnerAccompanying,
		Options: []Option{
			{Label: "Yes", Value: profile.TokenYes},
			{Label: "No", Value: profile.TokenNo, Dest: "age"},
		},
	},
	{
		ID:     "partner-citizen",
		Kind:   KindChoice,
		Prompt: "Is your spouse or partner a Canadian citizen or permanent resident?",
		Field:  profile.FieldPartnerCitizen,
		Options: []Option{
			{Label: "Yes", Value: profile.TokenYes, Dest: "age"},
			{Label: "No", Value: profile.TokenNo},
		},
	},
	{
		ID:     "partner-education",
		Kind:   KindChoice,
		Prompt: "What is your partner's highest level of education?",
		Field:  profile.FieldPartnerEducation,
		Options: educationOptions(),
	},
	{
		ID:     "partner-fluency",
		Kind:   KindChoice,
		Prompt: "How well does your partner speak English or French?",
		Mutate: setPartnerFluency,
		Options: []Option{
			{Label: "Native speaker", Value: fluencyNative},
			{Label: "Fluent", Value: fluencyFluent},
			{Label: "Intermediate", Value: fluencyIntermediate},
			{Label: "Basic", Value: fluencyBasic},
			{Label: "Not at all", Value: fluencyNone},
		},
	},
	{
		ID:          "partner-work",
		Kind:        KindInput,
		Prompt:      "How many years of skilled work experience does your partner have in Canada?",
		Field:       profile.FieldPartnerWorkYears,
		Min:         0,
		Max:         60,
		Placeholder: "years",
	},
	{
		ID:          "age",
		Kind:        KindInput,
		Prompt:      "How old are you?",
		Field:       profile.FieldAge,
		Min:         0,
		Max:         120,
		Placeholder: "age in years",
	},
	{
		ID:      "education",
		Kind:    KindChoice,
		Prompt:  "What is your highest level of education?",
		Field:   profile.FieldEducation,
		Options: educationOptions(),
	},
	{
		ID:     "canadian-study",
		Kind:   KindChoice,
		Prompt: "Did you study in Canada?",
		Detail: "Post-secondary credential from a Canadian institution.",
		Field:  profile.FieldCanadianCredential,
		Options: []Option{
			{Label: "No Canadian credential", Value: profile.TokenCredNone},
			{Label: "Yes, a 1-2 year credential", Value: profile.TokenCredShort},
			{Label: "Yes, a credential of 3+ years", Value: profile.TokenCredLong},
		},
	},
	{
		ID:     "first-language",
		Kind:   KindChoice,
		Prompt: "Which official language is your stronger one?",
		Field:  profile.FieldFirstLanguage,
		Options: []Option{
			{Label: "English", Value: profile.TokenEnglish},
			{Label: "French", Value: profile.TokenFrench},
		},
	},
	{
		ID:     "primary-fluency",
		Kind:   KindChoice,
		Prompt: "How would you rate your ability in that language?",
		Detail: "Covers speaking, listening, reading and writing.",
		Mutate: setPrimaryFluency,
		Options: []Option{
			{Label: "Native speaker", Value: fluencyNative},
			{Label: "Fluent", Value: fluencyFluent},
			{Label: "Intermediate", Value: fluencyIntermediate},
			{Label: "Basic", Value: fluencyBasic},
		},
	},
	{
		ID:     "secondary-fluency",
		Kind:   KindChoice,
		Prompt: "And your ability in the other official language?",
		Mutate: setSecondaryFluency,
		Options: []Option{
			{Label: "Strong", Value: fluencyStrong},
			{Label: "Moderate", Value: fluencyModerate},
			{Label: "Basic", Value: fluencyBasic},
			{Label: "None", Value: fluencyNone},
		},
	},
	{
		ID:          "work-in",
		Kind:        KindInput,
		Prompt:      "How many years of skilled work experience do you have in Canada?",
		Field:       profile.FieldCanadianWorkYears,
		Min:         0,
		Max:         60,
		Placeholder: "years",
	},
	{
		ID:          "work-out",
		Kind:        KindInput,
		Prompt:      "How many years of skilled work experience do you have outside Canada?",
		Field:       profile.FieldForeignWorkYears,
		Min:         0,
		Max:         60,
		Placeholder: "years",
	},
	{
		ID:      "trade-cert",
		Kind:    KindChoice,
		Prompt:  "Do you hold a certificate of qualification in a skilled trade?",
		Field:   profile.FieldTradeCertificate,
		Options: yesNo(),
	},
	{
		ID:      "nomination",
		Kind:    KindChoice,
		Prompt:  "Do you have a provincial or territorial nomination?",
		Field:   profile.FieldProvincialNominee,
		Options: yesNo(),
	},
	{
		ID:      "sibling",
		Kind:    KindChoice,
		Prompt:  "Do you have a brother or sister living in Canada who is a citizen or permanent resident?",
		Field:   profile.FieldSiblingInCanada,
		Options: yesNo(),
	},
	{
		ID:     "category",
		Kind:   KindChoice,
		Prompt: "Which of these best describes your occupation?",
		Field:  profile.FieldCategory,
		Options: []Option{
			{Label: "General / other", Value: string(profile.CategoryGeneral)},
			{Label: "Skilled trades", Value: string(profile.CategoryTrades)},
			{Label: "Healthcare", Value: string(profile.CategoryHealthcare)},
			{Label: "Science, tech, engineering or math", Value: string(profile.CategorySTEM)},
			{Label: "Transport", Value: string(profile.CategoryTransport)},
			{Label: "Agriculture or agri-food", Value: string(profile.CategoryAgriculture)},
		},
	},
	{
		ID:     "wrapup",
		Kind:   KindStatement,
		Prompt: "That's everything I need. Let's see how you score.",
		Next:   DoneID,
	},
}

func educationOptions() []Option {
	levels := profile.AllEducationLevels()
	opts := make([]Option, len(levels))
	for i, lvl := range levels {
		opts[i] = Option{Label: lvl.DisplayName(), Value: lvl.Token()}
	}
	return opts
}

// interview is the package-level script singleton, validated at init.
var interview = MustNew(interviewSteps)

// Interview returns the built-in interview script.
func Interview() *Script {
	return interview
}
