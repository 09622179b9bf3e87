package domain

import "testing"

func TestContainsCards(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		cards string
		want  bool
	}{
		{name: "empty set", hand: "2c 3c", cards: "", want: true},
		{name: "subset", hand: "2c 2c 3c", cards: "2c 3c", want: true},
		{name: "multiplicity respected", hand: "2c 3c", cards: "2c 2c", want: false},
		{name: "missing card", hand: "2c 3c", cards: "4c", want: false},
		{name: "full hand", hand: "2c 3c", cards: "3c 2c", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsCards(mustCards(t, tt.hand), mustCards(t, tt.cards)); got != tt.want {
				t.Fatalf("containsCards(%q, %q) = %v, want %v", tt.hand, tt.cards, got, tt.want)
			}
		})
	}
}

func TestRemoveCards(t *testing.T) {
	tests := []struct {
		name   string
		hand   string
		remove string
		want   string
	}{
		{name: "nothing to remove", hand: "2c 3c", remove: "", want: "2c 3c"},
		{name: "one copy of a duplicate", hand: "2c 2c 3c", remove: "2c", want: "2c 3c"},
		{name: "order preserved", hand: "5c 2c 3c", remove: "2c", want: "5c 3c"},
		{name: "all cards", hand: "2c 3c", remove: "3c 2c", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeCards(mustCards(t, tt.hand), mustCards(t, tt.remove))
			if cardsString(got) != tt.want {
				t.Fatalf("removeCards(%q, %q) = %q, want %q", tt.hand, tt.remove, cardsString(got), tt.want)
			}
		})
	}
}
