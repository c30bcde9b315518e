package rules

import "testing"

func TestConway(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"live isolated dies", true, 0, false},
		{"live with one dies", true, 1, false},
		{"live with two survives", true, 2, true},
		{"live with three survives", true, 3, true},
		{"live overcrowded dies", true, 4, false},
		{"live fully surrounded dies", true, 8, false},
		{"dead with two stays dead", false, 2, false},
		{"dead with three is born", false, 3, true},
		{"dead with four stays dead", false, 4, false},
		{"dead with none stays dead", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conway(tt.alive, tt.neighbors); got != tt.want {
				t.Fatalf("Conway(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
			}
		})
	}
}

func TestRuleType(t *testing.T) {
	var r Rule = Conway
	if !r(false, 3) {
		t.Fatal("expected birth with three neighbours")
	}
}
