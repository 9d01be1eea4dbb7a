package puzzle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordladder/internal/graph"
	"github.com/robalobadob/wordladder/internal/words"
)

// easyBands shifts "easy" down to 2-3 steps so the tiny test graph can
// satisfy it.
func easyBands() Bands {
	return Bands{
		{Label: "easy", MinSteps: 2, MaxSteps: 3},
		{Label: "medium", MinSteps: 4, MaxSteps: 5},
		{Label: "hard", MinSteps: 6, MaxSteps: 0},
	}
}

func testGenerator(t *testing.T, bands Bands, base []string, maxAttempts int) *Generator {
	t.Helper()
	dict := words.Normalize([]string{"cat", "cot", "cog", "dog", "dot", "bat", "bad"})
	g, err := graph.Build(dict)
	require.NoError(t, err)

	gen, err := NewGenerator(g, words.Normalize(base), bands, maxAttempts)
	require.NoError(t, err)
	return gen
}

func TestForPair(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 0)

	p, err := gen.ForPair("cat", "dog")
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cot", "cog", "dog"}, p.Path)
	require.Equal(t, 3, p.MinSteps)
	require.Equal(t, "easy", p.Difficulty)
	require.Equal(t, "cat_dog_001", p.ID)
}

func TestForPair_InputErrors(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 0)

	_, err := gen.ForPair("zebra", "dog")
	require.ErrorContains(t, err, `"zebra"`)

	_, err = gen.ForPair("cat", "horse")
	require.ErrorContains(t, err, `"horse"`)
}

func TestForPair_Unclassified(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 0)

	// cat -> cot is a single step, below every band.
	p, err := gen.ForPair("cat", "cot")
	require.NoError(t, err)
	require.Equal(t, Unclassified, p.Difficulty)
	require.Equal(t, 1, p.MinSteps)
}

func TestForPair_NoPath(t *testing.T) {
	dict := words.Normalize([]string{"cat", "cot", "zip", "zap"})
	g, err := graph.Build(dict)
	require.NoError(t, err)
	gen, err := NewGenerator(g, words.Normalize([]string{"cat", "zip"}), easyBands(), 0)
	require.NoError(t, err)

	_, err = gen.ForPair("cat", "zip")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestBatch_EasyFromTinyGraph(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 50)

	res, err := gen.Batch(context.Background(), "easy", 1)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 1)
	require.Zero(t, res.Shortfall)

	p := res.Puzzles[0]
	require.Equal(t, "easy", p.Difficulty)
	require.Equal(t, 3, p.MinSteps)
	require.Len(t, p.Path, 4)
}

func TestBatch_UnknownBand(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 10)
	_, err := gen.Batch(context.Background(), "legendary", 1)
	require.ErrorIs(t, err, ErrUnknownBand)
}

func TestBatch_NoBaseWords(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat"}, 10)
	_, err := gen.Batch(context.Background(), "easy", 1)
	require.ErrorIs(t, err, ErrNoBaseWords)
}

// A band no base pair can reach must produce a full shortfall, terminate,
// and not error.
func TestBatch_UnreachableBandShortfall(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog", "bat"}, 10)

	res, err := gen.Batch(context.Background(), "hard", 3)
	require.NoError(t, err)
	require.Empty(t, res.Puzzles)
	require.Equal(t, 3, res.Shortfall)
}

func TestBatch_DeduplicatesPairs(t *testing.T) {
	// With two base words there is exactly one unordered pair, so asking
	// for two easy puzzles must yield one puzzle plus a shortfall.
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 20)

	res, err := gen.Batch(context.Background(), "easy", 2)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 1)
	require.Equal(t, 1, res.Shortfall)
}

func TestBatch_NoDuplicateNormalizedPairs(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog", "bat", "dot", "cog"}, 100)

	res, err := gen.Batch(context.Background(), "easy", 5)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range res.Puzzles {
		key := PairKey(p.Start, p.Target)
		require.False(t, seen[key], "pair %s appeared twice", key)
		seen[key] = true
	}
}

func TestBatch_ContextCancel(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Batch(ctx, "easy", 100)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDistribution_CountsSumToTotal(t *testing.T) {
	counts := splitByWeight(10, []string{"easy", "medium", "hard"},
		map[string]float64{"easy": 0.4, "medium": 0.4, "hard": 0.2})
	require.Equal(t, []int{4, 4, 2}, counts)

	counts = splitByWeight(7, []string{"easy", "medium", "hard"},
		map[string]float64{"easy": 0.5, "medium": 0.3, "hard": 0.2})
	sum := 0
	for _, c := range counts {
		sum += c
	}
	require.Equal(t, 7, sum)
}

func TestDistribution_RemainderToLargestBand(t *testing.T) {
	// 0.5/0.5 of 5 floors to 2+2; the leftover goes to the largest band
	// (first on ties).
	counts := splitByWeight(5, []string{"a", "b"}, map[string]float64{"a": 0.5, "b": 0.5})
	require.Equal(t, []int{3, 2}, counts)
}

func TestDistribution_RawRatioWeights(t *testing.T) {
	// Weights are relative shares, so unnormalized ratios must still split
	// to exactly the requested total with no negative counts.
	cases := []struct {
		total   int
		labels  []string
		weights map[string]float64
	}{
		{1, []string{"a", "b", "c"}, map[string]float64{"a": 1, "b": 1, "c": 1}},
		{2, []string{"a", "b", "c", "d"}, map[string]float64{"a": 1, "b": 1, "c": 1, "d": 1}},
		{7, []string{"a", "b"}, map[string]float64{"a": 3, "b": 1}},
		{100, []string{"a", "b", "c"}, map[string]float64{"a": 2, "b": 2, "c": 1}},
	}
	for _, c := range cases {
		counts := splitByWeight(c.total, c.labels, c.weights)
		sum := 0
		for _, n := range counts {
			require.GreaterOrEqual(t, n, 0, "weights %v total %d gave %v", c.weights, c.total, counts)
			sum += n
		}
		require.Equal(t, c.total, sum, "weights %v gave %v", c.weights, counts)
	}
}

func TestDistribution_DedupeAcrossBands(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog", "bat", "dot", "cog"}, 50)

	res, err := gen.Distribution(context.Background(), 6,
		map[string]float64{"easy": 0.5, "medium": 0.5})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range res.Puzzles {
		key := PairKey(p.Start, p.Target)
		require.False(t, seen[key], "pair %s appeared in two bands", key)
		seen[key] = true
	}
}

func TestDistribution_UnknownBand(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog"}, 10)
	_, err := gen.Distribution(context.Background(), 4, map[string]float64{"mythic": 1})
	require.ErrorIs(t, err, ErrUnknownBand)
}

func TestRandomPair_EqualLengthDistinct(t *testing.T) {
	gen := testGenerator(t, easyBands(), []string{"cat", "dog", "bat"}, 10)

	for i := 0; i < 50; i++ {
		a, b, err := gen.RandomPair()
		require.NoError(t, err)
		require.NotEqual(t, a, b)
		require.Equal(t, len(a), len(b))
	}
}

// Every generated puzzle must verify against the same graph with matching
// step count and difficulty.
func TestRoundTrip_GenerateThenVerify(t *testing.T) {
	dict := words.Normalize([]string{"cat", "cot", "cog", "dog", "dot", "bat", "bad"})
	g, err := graph.Build(dict)
	require.NoError(t, err)
	gen, err := NewGenerator(g, words.Normalize([]string{"cat", "dog", "bat", "dot"}), easyBands(), 100)
	require.NoError(t, err)

	res, err := gen.Batch(context.Background(), "easy", 3)
	require.NoError(t, err)

	for _, p := range res.Puzzles {
		v := Verify(g, easyBands(), p.Path)
		require.True(t, v.Valid, "generated puzzle %s failed verification", p.ID)
		require.Equal(t, p.MinSteps, v.Steps)
		require.Equal(t, p.Difficulty, v.Difficulty)
		require.True(t, v.Optimal)
	}
}
