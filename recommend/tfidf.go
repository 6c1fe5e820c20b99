package recommend

import (
	"math"
	"regexp"
	"strings"

	"github.com/kellegous/labkit/sorting"
	"github.com/samber/lo"
)

// tokens are runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// vectorize returns an L2-normalized TF-IDF vector for each document over the
// sorted vocabulary of all documents. Term frequencies are raw counts and the
// inverse document frequency is smoothed as ln((1+n)/(1+df)) + 1.
func vectorize(docs []string) ([][]float64, []string) {
	toks := lo.Map(docs, func(doc string, _ int) []string {
		return tokenize(doc)
	})

	vocab := sorting.Quick(lo.Uniq(lo.Flatten(toks)))
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	df := make([]float64, len(vocab))
	for _, ts := range toks {
		for _, term := range lo.Uniq(ts) {
			df[index[term]]++
		}
	}

	n := float64(len(docs))
	vecs := make([][]float64, len(docs))
	for i, ts := range toks {
		v := make([]float64, len(vocab))
		for _, term := range ts {
			v[index[term]]++
		}

		var norm float64
		for j := range v {
			v[j] *= math.Log((1+n)/(1+df[j])) + 1
			norm += v[j] * v[j]
		}

		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range v {
				v[j] /= norm
			}
		}

		vecs[i] = v
	}

	return vecs, vocab
}

// cosine computes the similarity of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}
