package testutil

import "github.com/hupe1980/simclust/csr"

// Movie columns of the Ratings fixture.
const (
	LadyInTheWater = iota
	SnakesOnAPlane
	JustMyLuck
	SupermanReturns
	YouMeAndDupree
	TheNightListener

	MovieCount
)

// Critic rows of the Ratings fixture.
const (
	LisaRose = iota
	GeneSeymour
	MichaelPhillips
	ClaudiaPuig
	MickLaSalle
	JackMatthews
	Toby
	UnknownArtist

	CriticCount
)

// Ratings returns the classic critics x movies ratings matrix.
// Unrated movies are absent entries; the last critic rated a single movie.
func Ratings() *csr.Matrix {
	m := csr.New(csr.WithColumnCount(MovieCount), csr.WithStrictValues())

	rows := [][]csr.Entry{
		LisaRose: {
			{Column: LadyInTheWater, Value: 2.5},
			{Column: SnakesOnAPlane, Value: 3.5},
			{Column: JustMyLuck, Value: 3.0},
			{Column: SupermanReturns, Value: 3.5},
			{Column: YouMeAndDupree, Value: 2.5},
			{Column: TheNightListener, Value: 3.0},
		},
		GeneSeymour: {
			{Column: LadyInTheWater, Value: 3.0},
			{Column: SnakesOnAPlane, Value: 3.5},
			{Column: JustMyLuck, Value: 1.5},
			{Column: SupermanReturns, Value: 5.0},
			{Column: YouMeAndDupree, Value: 3.5},
			{Column: TheNightListener, Value: 3.0},
		},
		MichaelPhillips: {
			{Column: LadyInTheWater, Value: 2.5},
			{Column: SnakesOnAPlane, Value: 3.0},
			{Column: SupermanReturns, Value: 3.5},
			{Column: TheNightListener, Value: 4.0},
		},
		ClaudiaPuig: {
			{Column: SnakesOnAPlane, Value: 3.5},
			{Column: JustMyLuck, Value: 3.0},
			{Column: SupermanReturns, Value: 4.0},
			{Column: YouMeAndDupree, Value: 2.5},
			{Column: TheNightListener, Value: 4.5},
		},
		MickLaSalle: {
			{Column: LadyInTheWater, Value: 3.0},
			{Column: SnakesOnAPlane, Value: 4.0},
			{Column: JustMyLuck, Value: 2.0},
			{Column: SupermanReturns, Value: 3.0},
			{Column: YouMeAndDupree, Value: 2.0},
			{Column: TheNightListener, Value: 3.0},
		},
		JackMatthews: {
			{Column: LadyInTheWater, Value: 3.0},
			{Column: SnakesOnAPlane, Value: 4.0},
			{Column: SupermanReturns, Value: 5.0},
			{Column: YouMeAndDupree, Value: 3.5},
			{Column: TheNightListener, Value: 3.0},
		},
		Toby: {
			{Column: SnakesOnAPlane, Value: 4.5},
			{Column: SupermanReturns, Value: 4.0},
			{Column: YouMeAndDupree, Value: 1.0},
		},
		UnknownArtist: {
			{Column: TheNightListener, Value: 4.5},
		},
	}

	for _, r := range rows {
		if err := m.AppendRow(r...); err != nil {
			panic(err)
		}
	}
	m.Finalize()

	return m
}
