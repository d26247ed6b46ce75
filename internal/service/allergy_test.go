package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAllergies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total []string
		user  []string
		want  []string
	}{
		{"nil total adopts user list", nil, []string{"nuts", "fish"}, []string{"nuts", "fish"}},
		{"nil total dedupes user list", nil, []string{"nuts", "nuts"}, []string{"nuts"}},
		{"empty user leaves total", []string{"nuts"}, nil, []string{"nuts"}},
		{"nil both stays nil", nil, nil, nil},
		{"union without duplicates", []string{"nuts", "fish"}, []string{"fish", "eggs"}, []string{"nuts", "fish", "eggs"}},
		{"case sensitive", []string{"nuts"}, []string{"Nuts"}, []string{"nuts", "Nuts"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MergeAllergies(tt.total, tt.user))
		})
	}
}

func TestMergeAllergies_OrderIndependentUnion(t *testing.T) {
	t.Parallel()

	a := []string{"nuts", "fish", "milk"}
	b := []string{"milk", "soy", "nuts"}

	ab := MergeAllergies(MergeAllergies(nil, a), b)
	ba := MergeAllergies(MergeAllergies(nil, b), a)

	assert.ElementsMatch(t, ab, ba)
	assert.ElementsMatch(t, []string{"nuts", "fish", "milk", "soy"}, ab)
}

func TestParseAllergies(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"nuts", "fish"}, ParseAllergies(" nuts, fish"))
	assert.Equal(t, []string{"nuts", "fish"}, ParseAllergies("nuts,fish,"))
	assert.Equal(t, []string{"peanut butter"}, ParseAllergies("  peanut butter  "))
	assert.Empty(t, ParseAllergies(" , ,"))
	assert.Empty(t, ParseAllergies(""))
}
