package draws

import (
	"testing"

	"github.com/abhisek/maplecheck/internal/profile"
)

func TestSeedIsValid(t *testing.T) {
	ds := Seed()
	if len(ds) == 0 {
		t.Fatal("seed is empty")
	}
	for i, d := range ds {
		if d.Stream == "" || d.Label == "" || d.Date == "" {
			t.Errorf("draw %d has empty fields: %+v", i, d)
		}
		if d.Cutoff <= 0 || d.Cutoff > 1200 {
			t.Errorf("draw %d has implausible cutoff %d", i, d.Cutoff)
		}
	}
}

func TestSeedReturnsCopy(t *testing.T) {
	a := Seed()
	a[0].Cutoff = -1
	if Seed()[0].Cutoff == -1 {
		t.Error("mutating Seed() result leaked into the built-in set")
	}
}

func TestStreamEligibility(t *testing.T) {
	base := profile.Default()

	tests := []struct {
		name   string
		mutate func(*profile.Profile)
		want   map[string]bool
	}{
		{
			name:   "bare profile only enters the general pool",
			mutate: func(p *profile.Profile) {},
			want: map[string]bool{
				StreamGeneral: true,
				StreamCEC:     false,
				StreamPNP:     false,
				StreamFrench:  false,
				StreamSTEM:    false,
			},
		},
		{
			name:   "canadian work unlocks the experience stream",
			mutate: func(p *profile.Profile) { p.CanadianWorkYears = 1 },
			want:   map[string]bool{StreamCEC: true, StreamPNP: false},
		},
		{
			name:   "nomination unlocks the nominee stream",
			mutate: func(p *profile.Profile) { p.ProvincialNominee = true },
			want:   map[string]bool{StreamPNP: true, StreamCEC: false},
		},
		{
			name:   "strong secondary speaking unlocks the french stream",
			mutate: func(p *profile.Profile) { p.Secondary.Speaking = 7 },
			want:   map[string]bool{StreamFrench: true},
		},
		{
			name:   "secondary speaking below the bar stays locked",
			mutate: func(p *profile.Profile) { p.Secondary.Speaking = 6 },
			want:   map[string]bool{StreamFrench: false},
		},
		{
			name:   "declared category matches its occupation stream only",
			mutate: func(p *profile.Profile) { p.Category = profile.CategorySTEM },
			want:   map[string]bool{StreamSTEM: true, StreamTrades: false, StreamGeneral: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			for stream, want := range tc.want {
				if got := streamOpen(stream, p); got != want {
					t.Errorf("streamOpen(%q) = %v, want %v", stream, got, want)
				}
			}
		})
	}
}

func TestCompareVerdict(t *testing.T) {
	history := []Draw{
		{Stream: StreamGeneral, Label: "g1", Cutoff: 530, Date: "2026-07-01"},
		{Stream: StreamCEC, Label: "c1", Cutoff: 480, Date: "2026-06-01"},
		{Stream: StreamPNP, Label: "p1", Cutoff: 740, Date: "2026-05-01"},
	}

	p := profile.Default()
	p.CanadianWorkYears = 2

	res := Compare(500, p, history)
	if len(res.Eligible) != 2 {
		t.Fatalf("eligible draws = %d, want 2 (general + CEC)", len(res.Eligible))
	}
	if !res.Passed {
		t.Error("500 beats the CEC cutoff 480, want Passed")
	}

	res = Compare(470, p, history)
	if res.Passed {
		t.Error("470 beats no eligible cutoff, want not Passed")
	}

	// Exactly on the cutoff counts.
	res = Compare(480, p, history)
	if !res.Passed {
		t.Error("score equal to an eligible cutoff should pass")
	}

	// The PNP cutoff would pass at 740, but the stream is closed to this
	// profile so it must not contribute.
	res = Compare(745, profile.Default(), history)
	if len(res.Eligible) != 1 || res.Eligible[0].Stream != StreamGeneral {
		t.Errorf("bare profile should only see the general draw, got %+v", res.Eligible)
	}
}

func TestCompareEmptyHistory(t *testing.T) {
	res := Compare(1200, profile.Default(), nil)
	if res.Passed || len(res.Eligible) != 0 {
		t.Errorf("empty history must yield no eligibility, got %+v", res)
	}
}
