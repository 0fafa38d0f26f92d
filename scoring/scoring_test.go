package scoring

import (
	"reflect"
	"testing"

	"sevgi/models"
)

func letters(s string) []models.Choice {
	result := []models.Choice{}
	for _, r := range s {
		result = append(result, models.Choice(string(r)))
	}
	return result
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		choices []models.Choice
		want    string
	}{
		{"A majority", letters("AAB"), KeyEmotion},
		{"B majority", letters("ABB"), KeyAttention},
		{"tie resolves to emotion", letters("AB"), KeyEmotion},
		{"empty resolves to emotion", []models.Choice{}, KeyEmotion},
		{"nil resolves to emotion", nil, KeyEmotion},
		{"all B", letters("BBBBBBBBBBBB"), KeyAttention},
		{"junk letters ignored", letters("xxBy"), KeyAttention},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.choices)
			if got.Key != tt.want {
				t.Errorf("Build() key = %v, want %v", got.Key, tt.want)
			}
			if got.Summary == "" || got.Tip == "" || len(got.Bullets) != 3 {
				t.Errorf("Build() returned an incomplete bundle: %+v", got)
			}
		})
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	a := Build(letters("ABA"))
	b := Build(letters("BAA"))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Build(ABA) = %+v, Build(BAA) = %+v", a, b)
	}
}

func TestBuild_DoesNotShareBullets(t *testing.T) {
	p := Build(letters("A"))
	p.Bullets[0] = "changed"
	if Build(letters("A")).Bullets[0] == "changed" {
		t.Error("Build() leaked the shared bundle")
	}
}

func TestTally(t *testing.T) {
	a, b := Tally(letters("AABBBC"))
	if a != 2 || b != 3 {
		t.Errorf("Tally() = %d, %d, want 2, 3", a, b)
	}
}

func TestCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantScore *int
	}{
		{"same", "Leo", "Leo", intPtr(ScoreSameTrait)},
		{"same different case", " leo", "LEO ", intPtr(ScoreSameTrait)},
		{"different", "Aries", "Libra", intPtr(ScoreDifferentTrait)},
		{"missing respondent", "Aries", "", nil},
		{"missing both", "", "  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compatibility(tt.a, tt.b)
			if !reflect.DeepEqual(got.Score, tt.wantScore) {
				t.Errorf("Compatibility() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Text == "" {
				t.Error("Compatibility() text is empty")
			}
			if !reflect.DeepEqual(got, Compatibility(tt.b, tt.a)) {
				t.Error("Compatibility() depends on argument order")
			}
		})
	}
}

func TestPairProfile(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want ResultProfile
	}{
		{"tabulated", "Aries", "Libra", pairProfiles[traitPair{"aries", "libra"}]},
		{"reversed", "Libra", "Aries", pairProfiles[traitPair{"aries", "libra"}]},
		{"case and spaces", " pisces ", "CANCER", pairProfiles[traitPair{"cancer", "pisces"}]},
		{"missing pair", "Taurus", "Virgo", fallbackProfile},
		{"same label not tabulated", "Leo", "Leo", fallbackProfile},
		{"empty", "", "", fallbackProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PairProfile(tt.a, tt.b); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PairProfile(%q, %q) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPairProfile_OrderInsensitive(t *testing.T) {
	// only (aries, leo) is in the table
	if _, ok := pairProfiles[traitPair{"leo", "aries"}]; ok {
		t.Fatal("test expects a single ordering in the table")
	}
	if !reflect.DeepEqual(PairProfile("Leo", "Aries"), PairProfile("Aries", "Leo")) {
		t.Error("PairProfile(Leo, Aries) != PairProfile(Aries, Leo)")
	}
	if reflect.DeepEqual(PairProfile("Leo", "Aries"), fallbackProfile) {
		t.Error("PairProfile(Leo, Aries) should not fall back")
	}
}

func TestPairProfile_DoesNotShareTables(t *testing.T) {
	p := PairProfile("x", "y")
	p.Block2.Bullets[0] = "changed"
	if fallbackProfile.Block2.Bullets[0] == "changed" {
		t.Error("PairProfile() leaked the fallback profile")
	}
}

func intPtr(i int) *int {
	return &i
}
