package meta

import (
	"reflect"
	"testing"
)

func TestParsePersons(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Person
	}{
		{
			name:  "two inverted names",
			input: "Dupont,Jean;Smith,John",
			want: []Person{
				{Surname: "Dupont", Given: "Jean"},
				{Surname: "Smith", Given: "John"},
			},
		},
		{
			name:  "organization name",
			input: "Université de Strasbourg",
			want:  []Person{{FullName: "Université de Strasbourg"}},
		},
		{
			name:  "single word name",
			input: "Voltaire",
			want:  []Person{{FullName: "Voltaire"}},
		},
		{
			name:  "multiple commas fall back to full name",
			input: "Dupont, Jean, Pierre",
			want:  []Person{{FullName: "Dupont, Jean, Pierre"}},
		},
		{
			name:  "whitespace around separators",
			input: " Dupont , Jean ; Smith,John ",
			want: []Person{
				{Surname: "Dupont", Given: "Jean"},
				{Surname: "Smith", Given: "John"},
			},
		},
		{
			name:  "empty pieces dropped",
			input: "Dupont,Jean;;",
			want:  []Person{{Surname: "Dupont", Given: "Jean"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePersons(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePersons(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPersonString(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{"inverted", Person{Surname: "Dupont", Given: "Jean"}, "Dupont,Jean"},
		{"organization", Person{FullName: "Université de Strasbourg"}, "Université de Strasbourg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.person.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
