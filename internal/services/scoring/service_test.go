package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name       string
		faces      []int
		wantPoints int
		wantUsed   int
	}{
		{name: "triplet of ones", faces: []int{1, 1, 1, 6, 3}, wantPoints: 1000, wantUsed: 3},
		{name: "single one and five", faces: []int{6, 5, 1, 2, 4}, wantPoints: 150, wantUsed: 2},
		{name: "no scoring faces", faces: []int{2, 6, 4, 2, 3, 6}, wantPoints: 0, wantUsed: 0},
		{name: "empty roll", faces: []int{}, wantPoints: 0, wantUsed: 0},
		{name: "nil roll", faces: nil, wantPoints: 0, wantUsed: 0},
		{name: "triplet of twos", faces: []int{2, 2, 2, 3, 4}, wantPoints: 200, wantUsed: 3},
		{name: "triplet of sixes with single five", faces: []int{6, 6, 5, 6, 3}, wantPoints: 650, wantUsed: 4},
		{name: "four fours earn one triplet", faces: []int{4, 4, 4, 4, 2}, wantPoints: 400, wantUsed: 3},
		{name: "four ones add a single", faces: []int{1, 1, 1, 1, 3}, wantPoints: 1100, wantUsed: 4},
		{name: "five fives", faces: []int{5, 5, 5, 5, 5}, wantPoints: 600, wantUsed: 5},
		{name: "two ones two fives", faces: []int{1, 5, 1, 5, 3}, wantPoints: 300, wantUsed: 4},
		{name: "one die five", faces: []int{5}, wantPoints: 50, wantUsed: 1},
		{name: "one die three", faces: []int{3}, wantPoints: 0, wantUsed: 0},
		{name: "out of range faces ignored", faces: []int{0, 7, -1, 1}, wantPoints: 100, wantUsed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, used := CalculatePoints(tt.faces)
			assert.Equal(t, tt.wantPoints, points)
			assert.Equal(t, tt.wantUsed, used)
		})
	}
}

func TestCalculatePointsWithoutScoringFaces(t *testing.T) {
	// every multiset of 2s, 3s, 4s and 6s with no face three times
	nonScoring := []int{2, 3, 4, 6}
	var walk func(faces []int, counts map[int]int)
	walk = func(faces []int, counts map[int]int) {
		points, used := CalculatePoints(faces)
		assert.Equal(t, 0, points, "faces %v", faces)
		assert.Equal(t, 0, used, "faces %v", faces)
		if len(faces) == 6 {
			return
		}
		for _, face := range nonScoring {
			if counts[face] == 2 {
				continue
			}
			counts[face]++
			walk(append(append([]int{}, faces...), face), counts)
			counts[face]--
		}
	}
	walk(nil, map[int]int{})
}

func TestCalculatePointsNeverUsesMoreDiceThanRolled(t *testing.T) {
	var walk func(faces []int)
	walk = func(faces []int) {
		_, used := CalculatePoints(faces)
		assert.LessOrEqual(t, used, len(faces), "faces %v", faces)
		if len(faces) == 5 {
			return
		}
		for face := 1; face <= 6; face++ {
			walk(append(append([]int{}, faces...), face))
		}
	}
	walk(nil)
}

func TestTableImplementsScorer(t *testing.T) {
	var scorer Scorer = New()

	points, used := scorer.CalculatePoints([]int{1, 1, 1, 6, 3})
	assert.Equal(t, 1000, points)
	assert.Equal(t, 3, used)
}

func TestScoreTables(t *testing.T) {
	for face, want := range map[int]int{1: 1000, 2: 200, 3: 300, 4: 400, 5: 500, 6: 600} {
		got, ok := TripletScore(face)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	single, ok := SingleScore(1)
	assert.True(t, ok)
	assert.Equal(t, 100, single)

	single, ok = SingleScore(5)
	assert.True(t, ok)
	assert.Equal(t, 50, single)

	for _, face := range []int{0, 2, 3, 4, 6, 7} {
		_, ok := SingleScore(face)
		assert.False(t, ok, "face %d", face)
	}

	_, ok = TripletScore(7)
	assert.False(t, ok)
}
