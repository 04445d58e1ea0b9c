// Package testutil provides testing utilities for simclust.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)          // seeded, implements kmeans.RandomSource
//	seq := testutil.NewSequence(1, 2, 3)  // replays fixed values
//
// # Data
//
//	m := testutil.Ratings()                             // 8 critics x 6 movies
//	m := rng.ClusteredProfiles(200, 20, 3, 0.6, 0.2)    // planted clusters
package testutil
