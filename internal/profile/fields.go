package profile

import "fmt"

// Field identifies a single profile field targeted by a script step.
type Field int

const (
	FieldNone Field = iota
	FieldMaritalStatus
	FieldPartnerAccompanying
	FieldPartnerCitizen
	FieldAge
	FieldEducation
	FieldCanadianCredential
	FieldFirstLanguage
	FieldCanadianWorkYears
	FieldForeignWorkYears
	FieldTradeCertificate
	FieldProvincialNominee
	FieldSiblingInCanada
	FieldCategory
	FieldPartnerEducation
	FieldPartnerWorkYears
)

// Enum tokens used as underlying option values in the interview script.
const (
	TokenSingle    = "single"
	TokenMarried   = "married"
	TokenCommonLaw = "common-law"

	TokenYes = "yes"
	TokenNo  = "no"

	TokenEnglish = "english"
	TokenFrench  = "french"

	TokenEduLessThanSecondary = "less-than-secondary"
	TokenEduSecondary         = "secondary"
	TokenEduOneYear           = "one-year"
	TokenEduTwoYear           = "two-year"
	TokenEduBachelor          = "bachelor"
	TokenEduTwoOrMore         = "two-or-more"
	TokenEduMasters           = "masters"
	TokenEduDoctorate         = "doctorate"

	TokenCredNone     = "none"
	TokenCredShort    = "one-two-year"
	TokenCredLong     = "three-year-plus"
)

// Token returns the script token for an education level, the inverse of
// the parse performed by Set.
func (e EducationLevel) Token() string {
	switch e {
	case EduSecondary:
		return TokenEduSecondary
	case EduOneYearPostSecondary:
		return TokenEduOneYear
	case EduTwoYearPostSecondary:
		return TokenEduTwoYear
	case EduBachelorOrThreeYear:
		return TokenEduBachelor
	case EduTwoOrMoreCredentials:
		return TokenEduTwoOrMore
	case EduMastersOrProfessional:
		return TokenEduMasters
	case EduDoctorate:
		return TokenEduDoctorate
	default:
		return TokenEduLessThanSecondary
	}
}

func parseEducation(token string) (EducationLevel, error) {
	switch token {
	case TokenEduLessThanSecondary:
		return EduLessThanSecondary, nil
	case TokenEduSecondary:
		return EduSecondary, nil
	case TokenEduOneYear:
		return EduOneYearPostSecondary, nil
	case TokenEduTwoYear:
		return EduTwoYearPostSecondary, nil
	case TokenEduBachelor:
		return EduBachelorOrThreeYear, nil
	case TokenEduTwoOrMore:
		return EduTwoOrMoreCredentials, nil
	case TokenEduMasters:
		return EduMastersOrProfessional, nil
	case TokenEduDoctorate:
		return EduDoctorate, nil
	}
	return EduLessThanSecondary, fmt.Errorf("unknown education token %q", token)
}

func parseCategory(token string) (Category, error) {
	for _, c := range AllCategories() {
		if token == string(c) {
			return c, nil
		}
	}
	return CategoryGeneral, fmt.Errorf("unknown category token %q", token)
}

func parseBool(token string) (bool, error) {
	switch token {
	case TokenYes:
		return true, nil
	case TokenNo:
		return false, nil
	}
	return false, fmt.Errorf("unknown yes/no token %q", token)
}

// Set writes a value into the targeted field. String-typed fields take the
// script token for the value; integer fields take an int. The write is
// verbatim — range screening happens at the interpreter boundary.
func Set(p *Profile, f Field, v any) error {
	switch f {
	case FieldAge, FieldCanadianWorkYears, FieldForeignWorkYears, FieldPartnerWorkYears:
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("field %d requires an integer, got %T", f, v)
		}
		switch f {
		case FieldAge:
			p.Age = n
		case FieldCanadianWorkYears:
			p.CanadianWorkYears = n
		case FieldForeignWorkYears:
			p.ForeignWorkYears = n
		case FieldPartnerWorkYears:
			p.Partner.CanadianWorkYears = n
		}
		return nil
	}

	token, ok := v.(string)
	if !ok {
		return fmt.Errorf("field %d requires a token, got %T", f, v)
	}

	switch f {
	case FieldMaritalStatus:
		switch token {
		case TokenSingle:
			p.MaritalStatus = Single
		case TokenMarried:
			p.MaritalStatus = Married
		case TokenCommonLaw:
			p.MaritalStatus = CommonLaw
		default:
			return fmt.Errorf("unknown marital status token %q", token)
		}
	case FieldPartnerAccompanying:
		b, err := parseBool(token)
		if err != nil {
			return err
		}
		p.PartnerAccompanying = b
	case FieldPartnerCitizen:
		b, err := parseBool(token)
		if err != nil {
			return err
		}
		p.PartnerCitizen = b
	case FieldEducation:
		e, err := parseEducation(token)
		if err != nil {
			return err
		}
		p.Education = e
	case FieldCanadianCredential:
		switch token {
		case TokenCredNone:
			p.CanadianCredential = CredNone
		case TokenCredShort:
			p.CanadianCredential = CredOneOrTwoYear
		case TokenCredLong:
			p.CanadianCredential = CredThreeYearPlus
		default:
			return fmt.Errorf("unknown credential token %q", token)
		}
	case FieldFirstLanguage:
		switch token {
		case TokenEnglish:
			p.FirstLanguage = English
		case TokenFrench:
			p.FirstLanguage = French
		default:
			return fmt.Errorf("unknown language token %q", token)
		}
	case FieldTradeCertificate:
		b, err := parseBool(token)
		if err != nil {
			return err
		}
		p.TradeCertificate = b
	case FieldProvincialNominee:
		b, err := parseBool(token)
		if err != nil {
			return err
		}
		p.ProvincialNominee = b
	case FieldSiblingInCanada:
		b, err := parseBool(token)
		if err != nil {
			return err
		}
		p.SiblingInCanada = b
	case FieldCategory:
		c, err := parseCategory(token)
		if err != nil {
			return err
		}
		p.Category = c
	case FieldPartnerEducation:
		e, err := parseEducation(token)
		if err != nil {
			return err
		}
		p.Partner.Education = e
	default:
		return fmt.Errorf("no writable field %d", f)
	}
	return nil
}
