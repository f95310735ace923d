package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courselens/domain/table"
)

func TestCourseGeneratorShape(t *testing.T) {
	gen, err := NewCourseGenerator(DefaultCourseConfig())
	require.NoError(t, err)

	tbl, err := gen.Generate()
	require.NoError(t, err)

	assert.Equal(t, 3500, tbl.NumRows())
	assert.Equal(t, 8, tbl.NumCols())

	for _, col := range []string{ColPrice, ColSubscribers, ColReviews, ColLectures, ColContentDuration} {
		kind, err := tbl.Kind(col)
		require.NoError(t, err)
		assert.Equal(t, table.Numeric, kind, col)
	}

	kind, err := tbl.Kind(ColPublished)
	require.NoError(t, err)
	assert.Equal(t, table.Timestamp, kind)
}

func TestCourseGeneratorFreeCourses(t *testing.T) {
	gen, err := NewCourseGenerator(CourseConfig{Rows: 100, Seed: 1, FreeCourses: 10})
	require.NoError(t, err)

	tbl, err := gen.Generate()
	require.NoError(t, err)

	prices, err := tbl.Floats(ColPrice)
	require.NoError(t, err)

	free := 0
	for _, p := range prices {
		if p == 0 {
			free++
		}
	}
	assert.Equal(t, 10, free)
}

func TestCourseGeneratorDeterministic(t *testing.T) {
	cfg := CourseConfig{Rows: 50, Seed: 7, FreeCourses: 5}

	first, err := NewCourseGenerator(cfg)
	require.NoError(t, err)
	second, err := NewCourseGenerator(cfg)
	require.NoError(t, err)

	a, err := first.Generate()
	require.NoError(t, err)
	b, err := second.Generate()
	require.NoError(t, err)

	aSubs, err := a.Floats(ColSubscribers)
	require.NoError(t, err)
	bSubs, err := b.Floats(ColSubscribers)
	require.NoError(t, err)
	assert.Equal(t, aSubs, bSubs)
}

func TestCourseGeneratorRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  CourseConfig
	}{
		{"zero rows", CourseConfig{Rows: 0}},
		{"negative free", CourseConfig{Rows: 10, FreeCourses: -1}},
		{"free exceeds rows", CourseConfig{Rows: 10, FreeCourses: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCourseGenerator(tc.cfg)
			assert.Error(t, err)
		})
	}
}
