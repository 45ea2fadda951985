package player

import "testing"

func TestPlayerValidate(t *testing.T) {
	valid := Player{
		Name:            "Declan Rice",
		Team:            "Arsenal",
		Position:        PositionMidfielder,
		Goals:           0.2,
		Assists:         0.3,
		PassingAccuracy: 0.88,
		Tackles:         0.9,
		Interceptions:   0.8,
		Dribbles:        0.5,
		ShotsOnTarget:   0.3,
	}

	tests := []struct {
		name    string
		mutate  func(*Player)
		wantErr bool
	}{
		{name: "valid record", mutate: func(_ *Player) {}},
		{name: "zero scores are allowed", mutate: func(p *Player) { p.Goals = 0; p.Dribbles = 0 }},
		{name: "upper bound is inclusive", mutate: func(p *Player) { p.PassingAccuracy = 1 }},
		{name: "blank name", mutate: func(p *Player) { p.Name = "  " }, wantErr: true},
		{name: "missing team", mutate: func(p *Player) { p.Team = "" }, wantErr: true},
		{name: "unknown position", mutate: func(p *Player) { p.Position = "Winger" }, wantErr: true},
		{name: "score above one", mutate: func(p *Player) { p.ShotsOnTarget = 1.01 }, wantErr: true},
		{name: "negative score", mutate: func(p *Player) { p.Tackles = -0.1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestNameKey(t *testing.T) {
	inputs := []string{"Erling Haaland", "erling haaland", "ERLING HAALAND", "eRLING hAALAND"}
	for _, in := range inputs {
		if got := NameKey(in); got != "erling haaland" {
			t.Fatalf("NameKey(%q)=%q want=%q", in, got, "erling haaland")
		}
	}

	if got := NameKey(" Erling Haaland "); got == "erling haaland" {
		t.Fatalf("NameKey must keep surrounding whitespace, got %q", got)
	}
}
