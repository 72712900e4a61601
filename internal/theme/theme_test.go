package theme

import "testing"

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Comedy", string(ColorComedy)},
		{"Circus", string(ColorCircus)},
		{"Car Race", string(ColorCarRace)},
		{"", string(ColorDefault)},
		{"Opera", string(ColorDefault)},
	}
	for _, tt := range tests {
		if got := string(CategoryColor(tt.category)); got != tt.want {
			t.Errorf("CategoryColor(%q) = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestSeatsColor(t *testing.T) {
	tests := []struct {
		seats int
		want  string
	}{
		{0, string(ColorSoldOut)},
		{-1, string(ColorSoldOut)},
		{1, string(ColorSeatsFew)},
		{10, string(ColorSeatsFew)},
		{11, string(ColorSeatsPlenty)},
	}
	for _, tt := range tests {
		if got := string(SeatsColor(tt.seats)); got != tt.want {
			t.Errorf("SeatsColor(%d) = %s, want %s", tt.seats, got, tt.want)
		}
	}
}
