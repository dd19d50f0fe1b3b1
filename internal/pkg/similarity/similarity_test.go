package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freeil-scanner/internal/pkg/similarity"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "Free Yoga Tel Aviv",
			b:    "Free Yoga Tel Aviv",
			want: 1.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "one empty",
			a:    "yoga",
			b:    "",
			want: 0.0,
		},
		{
			name: "no overlap",
			a:    "abc",
			b:    "xyz",
			want: 0.0,
		},
		{
			name: "shifted overlap",
			a:    "abcd",
			b:    "bcde",
			// longest block "bcd" of length 3, total length 8
			want: 0.75,
		},
		{
			name: "identical hebrew",
			a:    "יוגה חינם בפארק הירקון",
			b:    "יוגה חינם בפארק הירקון",
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity.Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioNearDuplicateTitles(t *testing.T) {
	// Punctuation-level variants of the same event must score above the
	// 0.75 dedup threshold.
	got := similarity.Ratio("Free Yoga Tel Aviv", "Free Yoga Tel-Aviv")
	assert.GreaterOrEqual(t, got, 0.75)

	// Unrelated events in the same city must stay well below it.
	got = similarity.Ratio("Free Yoga Tel Aviv", "Jazz Night at the Port")
	assert.Less(t, got, 0.75)
}

func TestRatioSymmetryOnEqualLengths(t *testing.T) {
	a := "street art tour florentin"
	b := "florentin street art walk"
	// Same combined length both ways, so the score must agree.
	assert.InDelta(t, similarity.Ratio(a, b), similarity.Ratio(b, a), 1e-9)
}

func TestRatioHebrewIsRuneBased(t *testing.T) {
	// A one-letter difference in a Hebrew title should still be a near
	// match; byte-based matching would distort the lengths.
	got := similarity.Ratio("סיור חינם בעיר העתיקה", "סיור חינם בעיר העתיקה!")
	assert.Greater(t, got, 0.9)
}
