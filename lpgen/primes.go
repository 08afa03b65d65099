package lpgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// PrimesInRange returns every prime in [minVal, maxVal). Enumerating
// large ranges by trial division is slow, so when cacheDir is non-empty
// the result is persisted as primes_upto_<maxVal>.txt (one number per
// line) and read back on later calls.
func PrimesInRange(minVal, maxVal int, cacheDir string) ([]float64, error) {
	if minVal >= maxVal {
		return nil, ErrBadRange
	}
	name := fmt.Sprintf("primes_upto_%d.txt", maxVal)
	if cached, ok := readCache(cacheDir, name); ok {
		return filterMin(cached, minVal), nil
	}

	var primes []float64
	for i := minVal; i < maxVal; i++ {
		if isPrime(i) {
			primes = append(primes, float64(i))
		}
	}
	if err := writeCache(cacheDir, name, primes); err != nil {
		return nil, err
	}
	return primes, nil
}

// PseudoprimesInRange returns prime-like integers in [minVal, maxVal)
// from Euler's polynomial x²+x+41, whose values thin out with magnitude
// the way primes do. Caching works as for PrimesInRange, under
// pseudoprimes_upto_<maxVal>.txt.
func PseudoprimesInRange(minVal, maxVal int, cacheDir string) ([]float64, error) {
	if minVal >= maxVal {
		return nil, ErrBadRange
	}
	name := fmt.Sprintf("pseudoprimes_upto_%d.txt", maxVal)
	if cached, ok := readCache(cacheDir, name); ok {
		return filterMin(cached, minVal), nil
	}

	var pseudo []float64
	for x := 0; ; x++ {
		n := x*x + x + 41
		if n >= maxVal {
			break
		}
		if n >= minVal {
			pseudo = append(pseudo, float64(n))
		}
	}
	if err := writeCache(cacheDir, name, pseudo); err != nil {
		return nil, err
	}
	return pseudo, nil
}

// Primes generates an input where every coefficient and bound is a
// prime sampled without replacement from [minVal, maxVal).
func Primes(m, n, minVal, maxVal int, seed int64, cacheDir string) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	pool, err := PrimesInRange(minVal, maxVal, cacheDir)
	if err != nil {
		return Input{}, err
	}
	return fromPool(pool, m, n, seed)
}

// Pseudoprimes generates an input sampled from the pseudoprime pool in
// [minVal, maxVal), mirroring Primes.
func Pseudoprimes(m, n, minVal, maxVal int, seed int64, cacheDir string) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	pool, err := PseudoprimesInRange(minVal, maxVal, cacheDir)
	if err != nil {
		return Input{}, err
	}
	return fromPool(pool, m, n, seed)
}

// fromPool samples every vector of an input from pool without
// replacement, one fresh draw per row.
func fromPool(pool []float64, m, n int, seed int64) (Input, error) {
	need := n
	if m > need {
		need = m
	}
	if len(pool) < need {
		return Input{}, ErrNotEnoughValues
	}
	rng := rngFromSeed(seed)

	in := Input{
		Objective:   sample(rng, pool, n),
		Constraints: make([][]float64, m),
		Bounds:      sample(rng, pool, m),
	}
	for i := range in.Constraints {
		in.Constraints[i] = sample(rng, pool, n)
	}
	return in, nil
}

// isPrime uses trial division up to i/2, the same filter the cached
// files were originally produced with.
func isPrime(i int) bool {
	if i < 2 {
		return false
	}
	for j := 2; j <= i/2; j++ {
		if i%j == 0 {
			return false
		}
	}
	return true
}

// readCache loads a one-number-per-line cache file; ok is false when
// the directory is unset or the file is absent or malformed.
func readCache(dir, name string) ([]float64, bool) {
	if dir == "" {
		return nil, false
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var vals []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, false
		}
		vals = append(vals, float64(v))
	}
	if sc.Err() != nil {
		return nil, false
	}
	return vals, true
}

// writeCache persists vals for the next run; a missing directory is
// created. An empty dir disables caching.
func writeCache(dir, name string, vals []float64) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "lpgen: creating cache directory")
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return errors.Wrap(err, "lpgen: creating cache file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range vals {
		if _, err = fmt.Fprintf(w, "%d\n", int(v)); err != nil {
			return errors.Wrap(err, "lpgen: writing cache file")
		}
	}
	return errors.Wrap(w.Flush(), "lpgen: flushing cache file")
}

// filterMin drops cached values below minVal; cache files are keyed by
// their upper bound only.
func filterMin(vals []float64, minVal int) []float64 {
	out := vals[:0:0]
	for _, v := range vals {
		if v >= float64(minVal) {
			out = append(out, v)
		}
	}
	return out
}
