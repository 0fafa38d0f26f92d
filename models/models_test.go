package models

import "testing"

func TestInvite_HasRespondent(t *testing.T) {
	name, trait, age := "Dilnoza", "Libra", 23
	tests := []struct {
		name   string
		invite Invite
		want   bool
	}{
		{"empty", Invite{}, false},
		{"partial", Invite{RespondentName: &name}, false},
		{"complete", Invite{RespondentName: &name, RespondentAge: &age, RespondentTrait: &trait}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.invite.HasRespondent(); got != tt.want {
				t.Errorf("Invite.HasRespondent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChoice_Valid(t *testing.T) {
	for c, want := range map[Choice]bool{ChoiceA: true, ChoiceB: true, "a": false, "": false, "C": false} {
		if got := c.Valid(); got != want {
			t.Errorf("Choice(%q).Valid() = %v, want %v", c, got, want)
		}
	}
}
