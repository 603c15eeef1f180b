package draws

import "github.com/abhisek/maplecheck/internal/profile"

// frenchStreamCLB is the secondary-language speaking benchmark that
// unlocks the French-proficiency stream.
const frenchStreamCLB = 7

// Result is the outcome of comparing a score against the reference set.
type Result struct {
	// Eligible lists the draws in streams the profile can enter, in the
	// reference set's order.
	Eligible []Draw
	// Passed is true iff the score meets or beats at least one eligible
	// cutoff.
	Passed bool
}

// Compare filters the reference set to the streams this profile can enter
// and checks the score against their cutoffs. Deterministic and free of
// side effects.
func Compare(score int, p profile.Profile, history []Draw) Result {
	var res Result
	for _, d := range history {
		if !streamOpen(d.Stream, p) {
			continue
		}
		res.Eligible = append(res.Eligible, d)
		if score >= d.Cutoff {
			res.Passed = true
		}
	}
	return res
}

// streamOpen reports whether the profile can enter a stream: the general
// pool is always open, occupation streams need the matching declared
// category, and the specialized streams unlock on profile conditions.
func streamOpen(stream string, p profile.Profile) bool {
	switch stream {
	case StreamGeneral:
		return true
	case StreamCEC:
		return p.CanadianWorkYears > 0
	case StreamPNP:
		return p.ProvincialNominee
	case StreamFrench:
		return p.Secondary.Speaking >= frenchStreamCLB
	default:
		return string(p.Category) == stream
	}
}
