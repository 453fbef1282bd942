package engine

import "math"

// Vector is a genre vector with one component per vocabulary entry, in
// vocabulary order. Movie vectors are one-hot; user profiles hold the
// non-negative rating-weighted averages.
type Vector []float64

// Dot returns the dot product. Vectors of different lengths never meet in
// practice (every vector in a model shares the vocabulary dimension); the
// shorter length wins if they do.
func (v Vector) Dot(o Vector) float64 {
	n := len(v)
	if len(o) < n {
		n = len(o)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += v[i] * o[i]
	}
	return dot
}

// Norm returns the Euclidean magnitude.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Sum returns the component sum.
func (v Vector) Sum() float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Cosine returns the cosine similarity of two vectors, in [-1, 1]. A
// zero-magnitude operand yields 0 by convention rather than NaN.
func Cosine(a, b Vector) float64 {
	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// Cosines scores one query vector against a batch, reusing the query
// magnitude across the whole batch. Result i corresponds to vectors[i].
func Cosines(query Vector, vectors []Vector) []float64 {
	out := make([]float64, len(vectors))
	nq := query.Norm()
	if nq == 0 {
		return out
	}
	for i, v := range vectors {
		nv := v.Norm()
		if nv == 0 {
			continue
		}
		out[i] = query.Dot(v) / (nq * nv)
	}
	return out
}
