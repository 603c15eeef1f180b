package scoring

import "github.com/abhisek/maplecheck/internal/profile"

// modePoints is a pair of point values indexed by Mode.
type modePoints [2]int

func (m modePoints) at(mode Mode) int {
	return m[mode]
}

// Age bands. 20-29 scores the flat maximum; 18-19 and 30-39 come from the
// exact-age table; 40-44 follow the linear taper; 17-and-under and 45-plus
// score zero.
const (
	ageBandLow   = 20
	ageBandHigh  = 29
	ageTaperFrom = 40
	ageFloor     = 45
)

var ageMax = modePoints{110, 100}

var agePoints = map[int]modePoints{
	18: {99, 90},
	19: {105, 95},
	30: {105, 95},
	31: {99, 90},
	32: {94, 85},
	33: {88, 80},
	34: {83, 75},
	35: {77, 70},
	36: {72, 65},
	37: {66, 60},
	38: {61, 55},
	39: {55, 50},
}

// ageTaper is the linear formula for ages 40-44: start minus slope per
// year past 40.
var (
	ageTaperStart = modePoints{50, 45}
	ageTaperSlope = modePoints{11, 10}
)

var educationPoints = map[profile.EducationLevel]modePoints{
	profile.EduLessThanSecondary:     {0, 0},
	profile.EduSecondary:             {30, 28},
	profile.EduOneYearPostSecondary:  {90, 84},
	profile.EduTwoYearPostSecondary:  {98, 91},
	profile.EduBachelorOrThreeYear:   {120, 112},
	profile.EduTwoOrMoreCredentials:  {128, 119},
	profile.EduMastersOrProfessional: {135, 126},
	profile.EduDoctorate:             {150, 140},
}

// Language proficiency tiers for the primary language, per skill. A skill
// below the pass tier scores zero.
const (
	clbHigh  = 9
	clbUpper = 7
	clbMid   = 5
	clbPass  = 4
)

var languageTierPoints = []struct {
	minCLB int
	points modePoints
}{
	{clbHigh, modePoints{34, 32}},
	{clbUpper, modePoints{23, 22}},
	{clbMid, modePoints{9, 8}},
	{clbPass, modePoints{6, 6}},
}

// canadianWorkPoints is indexed by years clamped to [0,5].
var canadianWorkPoints = [profile.WorkYearsCap + 1]modePoints{
	{0, 0},
	{40, 35},
	{53, 46},
	{64, 56},
	{72, 63},
	{80, 70},
}

// Partner tables. Per-skill language points and the education/work
// lookups are already bounded so the 40-point subtotal cap only bites on
// inconsistent data.
var partnerEducationPoints = map[profile.EducationLevel]int{
	profile.EduLessThanSecondary:     0,
	profile.EduSecondary:             2,
	profile.EduOneYearPostSecondary:  6,
	profile.EduTwoYearPostSecondary:  7,
	profile.EduBachelorOrThreeYear:   8,
	profile.EduTwoOrMoreCredentials:  9,
	profile.EduMastersOrProfessional: 10,
	profile.EduDoctorate:             10,
}

var partnerLanguageTiers = []struct {
	minCLB int
	points int
}{
	{clbHigh, 5},
	{clbUpper, 3},
	{clbMid, 1},
}

var partnerWorkPoints = [profile.WorkYearsCap + 1]int{0, 5, 7, 8, 9, 10}

// Transferability increments.
const (
	transferEducationBase = 25
	transferEducationHigh = 50
	transferForeignBase   = 25
	transferForeignHigh   = 50
	transferForeignHighAt = 3
)

// Additional bonuses.
const (
	nominationBonus     = 600
	siblingBonus        = 15
	canadianStudyShort  = 15
	canadianStudyLong   = 30
	frenchBonusStrong   = 50
	frenchBonusWeak     = 25
	frenchSecondaryCLB  = 7
	frenchPrimaryModCLB = 5
	frenchPrimaryLowCLB = 4
)
