package seqgen

import (
	"errors"
	"math/rand"
)

// Common alphabets.
const (
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Nucleotides = "ACGT"
)

// Sentinel errors for sequence generation.
var (
	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("seqgen: alphabet must be non-empty")

	// ErrBadLength indicates a negative sequence length.
	ErrBadLength = errors.New("seqgen: length must be non-negative")

	// ErrBadRate indicates a mutation rate outside [0, 1].
	ErrBadRate = errors.New("seqgen: rate must be within [0, 1]")
)

// DefaultSeed is the fixed "zero" seed used when callers pass seed == 0.
// The value is arbitrary but stable, so default runs stay reproducible.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; any other seed is used verbatim.
//
// The returned generator is NOT goroutine-safe. Give every goroutine its own
// generator (see Derive and DeriveSeed) instead of sharing one.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new 64-bit seed.
//
// Notes:
//   - The mix is the SplitMix64 finalizer: small input changes give large,
//     well-spread output changes, so neighbouring stream ids (trial 0, 1, ...)
//     give uncorrelated seeds.
//   - It is a pure function, so concurrent trials can derive their seeds
//     without sharing any generator state.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent stream seeded from base and stream.
// base == nil uses DefaultSeed as the parent. Otherwise base.Int63 is consumed
// once, so two derivations with the same stream id still differ.
//
// Usage:
//   - Call during setup, from the goroutine that owns base, and hand each
//     child to exactly one worker.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Random returns n symbols drawn uniformly from alphabet.
// A nil rng uses NewRand(0).
//
// Errors: ErrBadLength, ErrEmptyAlphabet.
func Random(rng *rand.Rand, n int, alphabet string) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if rng == nil {
		rng = NewRand(0)
	}
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return seq, nil
}

// DNA returns an upper-case nucleotide sequence of length n whose G+C count is
// round(n·gc). The composition is exact; positions are shuffled.
// gc is clamped to [0, 1].
//
// Errors: ErrBadLength.
func DNA(rng *rand.Rand, n int, gc float64) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	if rng == nil {
		rng = NewRand(0)
	}
	gc = min(max(gc, 0), 1)
	gcCount := min(int(float64(n)*gc+0.5), n)

	seq := make([]byte, n)
	for i := range seq {
		pick := rng.Intn(2)
		switch {
		case i < gcCount && pick == 0:
			seq[i] = 'G'
		case i < gcCount:
			seq[i] = 'C'
		case pick == 0:
			seq[i] = 'A'
		default:
			seq[i] = 'T'
		}
	}
	rng.Shuffle(n, func(a, b int) { seq[a], seq[b] = seq[b], seq[a] })

	return seq, nil
}

// Mutate copies base, hitting each position with probability rate by one of
// substitution, insertion before it, or deletion (equally likely).
// Inserted and substituted symbols come from alphabet.
//
// Errors: ErrBadRate, ErrEmptyAlphabet.
func Mutate(rng *rand.Rand, base []byte, alphabet string, rate float64) ([]byte, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrBadRate
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if rng == nil {
		rng = NewRand(0)
	}
	out := make([]byte, 0, len(base)+len(base)/8)
	for _, c := range base {
		if rng.Float64() >= rate {
			out = append(out, c)
			continue
		}
		switch rng.Intn(3) {
		case 0:
			out = append(out, alphabet[rng.Intn(len(alphabet))])
		case 1:
			out = append(out, alphabet[rng.Intn(len(alphabet))], c)
		default:
			// deletion
		}
	}

	return out, nil
}

// Pair draws x of length n and a partner y. With related == 0, y is an
// independent sequence of length n; otherwise y is Mutate(x, related), whose
// length drifts with the indels.
//
// Errors: as Random and Mutate.
func Pair(rng *rand.Rand, n int, alphabet string, related float64) (x, y []byte, err error) {
	if rng == nil {
		rng = NewRand(0)
	}
	if x, err = Random(rng, n, alphabet); err != nil {
		return nil, nil, err
	}
	if related == 0 {
		y, err = Random(rng, n, alphabet)
	} else {
		y, err = Mutate(rng, x, alphabet, related)
	}
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
