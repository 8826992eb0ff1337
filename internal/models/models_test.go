package models

import "testing"

func TestPhaseConstants(t *testing.T) {
	if PhaseSetup != "setup" || PhaseWork != "work" || PhaseRest != "rest" || PhaseCompleted != "completed" {
		t.Fatalf("unexpected phase constants")
	}
	if PhaseSetup.Timed() || PhaseCompleted.Timed() {
		t.Fatalf("setup and completed must not be timed")
	}
	if !PhaseWork.Timed() || !PhaseRest.Timed() {
		t.Fatalf("work and rest must be timed")
	}
}

func TestGradeScale(t *testing.T) {
	grades := Grades()
	if len(grades) != 13 {
		t.Fatalf("expected 13 grades, got %d", len(grades))
	}
	if grades[0].String() != "V0" || grades[12].String() != "V12+" {
		t.Fatalf("unexpected scale ends %s..%s", grades[0], grades[12])
	}
	if Grade(13).Valid() || Grade(-1).Valid() {
		t.Fatalf("out of range grades must be invalid")
	}
}

func TestParseGrade(t *testing.T) {
	cases := []struct {
		in   string
		want Grade
	}{
		{"V0", GradeV0},
		{"v4", GradeV4},
		{"7", GradeV7},
		{" V10 ", GradeV10},
		{"V12+", GradeV12Plus},
		{"V12", GradeV12Plus},
	}
	for _, tc := range cases {
		got, err := ParseGrade(tc.in)
		if err != nil {
			t.Fatalf("ParseGrade(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseGrade(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "V13", "5.12a"} {
		if _, err := ParseGrade(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestGradeOffsetClamps(t *testing.T) {
	if got := GradeV1.Offset(-2); got != GradeV0 {
		t.Fatalf("expected V0, got %s", got)
	}
	if got := GradeV12Plus.Offset(1); got != GradeV12Plus {
		t.Fatalf("expected V12+, got %s", got)
	}
	if got := GradeV4.Offset(-1); got != GradeV3 {
		t.Fatalf("expected V3, got %s", got)
	}
}

func TestGradeTextRoundTrip(t *testing.T) {
	var g Grade
	if err := g.UnmarshalText([]byte("V6")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	text, err := g.MarshalText()
	if err != nil || string(text) != "V6" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
}

func TestRelationTo(t *testing.T) {
	if RelationTo(GradeV5, GradeV4) != RelationAbove {
		t.Fatalf("expected above")
	}
	if RelationTo(GradeV4, GradeV4) != RelationAtMax {
		t.Fatalf("expected at max")
	}
	if RelationTo(GradeV3, GradeV4) != RelationOneBelow {
		t.Fatalf("expected one below")
	}
	if RelationTo(GradeV1, GradeV4) != RelationBelow {
		t.Fatalf("expected below")
	}
}

func TestStrategies(t *testing.T) {
	all := Strategies()
	if len(all) != 4 {
		t.Fatalf("expected 4 strategies, got %d", len(all))
	}
	for _, s := range all {
		if _, err := ParseStrategy(string(s)); err != nil {
			t.Fatalf("ParseStrategy(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseStrategy("pyramid"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
	if StrategyEqual.Next(1) != StrategyClassic {
		t.Fatalf("expected wrap to classic")
	}
	if StrategyClassic.Next(-1) != StrategyEqual {
		t.Fatalf("expected wrap back to equal")
	}
}

func TestComputeStats(t *testing.T) {
	rounds := []Round{
		{ID: 1, Completed: true, Problems: []Problem{{ID: 1, Flashed: true}, {ID: 2}}},
		{ID: 2, Problems: []Problem{{ID: 1, Flashed: true}, {ID: 2, Flashed: true}}},
	}
	st := ComputeStats(rounds, 2)
	if st.TotalProblems != 4 || st.FlashedProblems != 3 || st.CompletedRounds != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.FlashRate != 75 {
		t.Fatalf("expected 75%% flash rate, got %v", st.FlashRate)
	}
	if empty := ComputeStats(nil, 1); empty.FlashRate != 0 {
		t.Fatalf("expected zero flash rate for no problems")
	}
}

func TestCloneRoundsIsDeep(t *testing.T) {
	src := []Round{{ID: 1, Problems: []Problem{{ID: 1, Name: "a"}}}}
	cp := CloneRounds(src)
	cp[0].Problems[0].Name = "b"
	if src[0].Problems[0].Name != "a" {
		t.Fatalf("clone shares problem storage")
	}
}
