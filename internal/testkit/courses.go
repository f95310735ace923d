// Package testkit generates synthetic course catalogs with realistic shape:
// lognormal engagement counts, a fixed share of free courses, and category
// weights matching a typical online learning marketplace. The generator is
// deterministic for a given seed so tests and demo figures are reproducible.
package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"courselens/domain/table"
)

// Column names produced by the generator.
const (
	ColPrice           = "price"
	ColSubscribers     = "num_subscribers"
	ColReviews         = "num_reviews"
	ColLectures        = "num_lectures"
	ColContentDuration = "content_duration"
	ColSubject         = "subject"
	ColLevel           = "level"
	ColPublished       = "published_timestamp"
)

var (
	subjects     = []string{"Web Development", "Business Finance", "Musical Instruments", "Graphic Design"}
	subjectDist  = []float64{0.40, 0.30, 0.15, 0.15}
	levels       = []string{"All Levels", "Beginner Level", "Intermediate Level", "Expert Level"}
	levelDist    = []float64{0.35, 0.30, 0.25, 0.10}
	paidPrices   = []float64{19.99, 24.99, 29.99, 49.99, 99.99, 149.99, 199.99}
	launchYears  = []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020}
	launchWeight = []float64{0.02, 0.03, 0.05, 0.08, 0.12, 0.15, 0.18, 0.20, 0.17}
)

// CourseConfig controls the size and randomness of the generated catalog.
type CourseConfig struct {
	Rows int
	Seed int64

	// FreeCourses is the number of rows with a zero price. The generated
	// frame orders free rows first, matching how real exports cluster
	// promotional listings.
	FreeCourses int
}

// DefaultCourseConfig returns the configuration used by the demo figures:
// 3500 courses with 300 free listings.
func DefaultCourseConfig() CourseConfig {
	return CourseConfig{Rows: 3500, Seed: 42, FreeCourses: 300}
}

// CourseGenerator produces synthetic course tables.
type CourseGenerator struct {
	cfg CourseConfig
	rng *rand.Rand
}

// NewCourseGenerator validates the config and builds a generator.
func NewCourseGenerator(cfg CourseConfig) (*CourseGenerator, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("course generator: rows must be positive, got %d", cfg.Rows)
	}
	if cfg.FreeCourses < 0 || cfg.FreeCourses > cfg.Rows {
		return nil, fmt.Errorf("course generator: free course count %d out of range for %d rows", cfg.FreeCourses, cfg.Rows)
	}
	return &CourseGenerator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}, nil
}

// Generate builds the full synthetic catalog as a Table. The published
// timestamp column is already parsed and kind-tagged.
func (g *CourseGenerator) Generate() (table.Table, error) {
	n := g.cfg.Rows

	prices := make([]float64, n)
	for i := g.cfg.FreeCourses; i < n; i++ {
		prices[i] = paidPrices[g.rng.Intn(len(paidPrices))]
	}

	subscribers := g.lognormalInts(n, 7, 2)
	reviews := g.lognormalInts(n, 4, 1.5)
	lectures := g.lognormalInts(n, 3.5, 0.8)

	durations := make([]float64, n)
	for i := range durations {
		durations[i] = g.lognormal(2, 0.7)
	}

	subjectCol := make([]string, n)
	levelCol := make([]string, n)
	published := make([]time.Time, n)
	publishedRecords := make([]string, n)
	for i := 0; i < n; i++ {
		subjectCol[i] = subjects[g.weightedIndex(subjectDist)]
		levelCol[i] = levels[g.weightedIndex(levelDist)]
		ts := g.publishDate(launchYears[g.weightedIndex(launchWeight)])
		published[i] = ts
		publishedRecords[i] = ts.Format("2006-01-02 15:04:05")
	}

	df := dataframe.New(
		series.New(prices, series.Float, ColPrice),
		series.New(subscribers, series.Int, ColSubscribers),
		series.New(reviews, series.Int, ColReviews),
		series.New(lectures, series.Int, ColLectures),
		series.New(durations, series.Float, ColContentDuration),
		series.New(subjectCol, series.String, ColSubject),
		series.New(levelCol, series.String, ColLevel),
		series.New(publishedRecords, series.String, ColPublished),
	)

	t, err := table.New(df)
	if err != nil {
		return table.Table{}, err
	}
	return t.WithTimestamps(ColPublished, published)
}

// lognormal draws a single lognormal value with the given log-space mean
// and standard deviation.
func (g *CourseGenerator) lognormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*g.rng.NormFloat64())
}

func (g *CourseGenerator) lognormalInts(n int, mu, sigma float64) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(g.lognormal(mu, sigma))
	}
	return out
}

// weightedIndex picks an index according to the given probability weights.
// Weights are assumed to sum to 1; the last index absorbs rounding slack.
func (g *CourseGenerator) weightedIndex(weights []float64) int {
	r := g.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// publishDate picks a uniform date within the given year.
func (g *CourseGenerator) publishDate(year int) time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(span))))
}
