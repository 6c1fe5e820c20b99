// Package recommend suggests similar products using TF-IDF vectors of each
// product's category and brand.
package recommend

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kellegous/labkit/sorting"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	// PriceRange is the largest price difference still called similar.
	PriceRange = 100

	// HighRating is the rating from which a product counts as highly rated.
	HighRating = 4.5
)

// Product is an item in the catalog.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// DefaultCatalog returns the sample catalog.
func DefaultCatalog() []Product {
	return []Product{
		{1, "iPhone 14", "Smartphone", "Apple", 799, 4.7},
		{2, "Samsung Galaxy S23", "Smartphone", "Samsung", 749, 4.6},
		{3, "MacBook Air", "Laptop", "Apple", 999, 4.8},
		{4, "Dell XPS 13", "Laptop", "Dell", 899, 4.5},
		{5, "iPad Pro", "Tablet", "Apple", 799, 4.7},
		{6, "Samsung Galaxy Tab", "Tablet", "Samsung", 699, 4.4},
	}
}

// NotFoundError is returned when a product name is not in the catalog.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.Name)
}

// Recommendation is a product suggested for another one.
type Recommendation struct {
	Product    Product  `json:"product"`
	Similarity float64  `json:"similarity"`
	Reasons    []string `json:"reasons"`
}

// Recommender holds the pairwise similarity of a catalog.
type Recommender struct {
	products []Product
	sim      [][]float64
}

// New computes the similarity matrix for products.
func New(products []Product) *Recommender {
	vecs, _ := vectorize(lo.Map(products, func(p Product, _ int) string {
		return p.Category + " " + p.Brand
	}))

	sim := make([][]float64, len(vecs))
	for i := range vecs {
		sim[i] = make([]float64, len(vecs))
		for j := range vecs {
			sim[i][j] = cosine(vecs[i], vecs[j])
		}
	}

	return &Recommender{
		products: products,
		sim:      sim,
	}
}

// Similarity returns the cosine similarity of the i-th and j-th products.
func (r *Recommender) Similarity(i, j int) float64 {
	return r.sim[i][j]
}

// Recommend returns up to topN products most similar to the named one, most
// similar first. Products that are equally similar stay in catalog order.
func (r *Recommender) Recommend(name string, topN int) ([]Recommendation, error) {
	if topN < 1 {
		return nil, errors.Errorf("topN must be at least 1, got %d", topN)
	}

	target, idx, ok := lo.FindIndexOf(r.products, func(p Product) bool {
		return strings.EqualFold(p.Name, strings.TrimSpace(name))
	})
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	others := lo.Filter(lo.Range(len(r.products)), func(i int, _ int) bool {
		return i != idx
	})

	sorting.BubbleFunc(others, func(a, b int) int {
		return cmp.Compare(r.sim[idx][b], r.sim[idx][a])
	})

	if len(others) > topN {
		others = others[:topN]
	}

	return lo.Map(others, func(i int, _ int) Recommendation {
		return Recommendation{
			Product:    r.products[i],
			Similarity: math.Round(r.sim[idx][i]*100) / 100,
			Reasons:    reasons(target, r.products[i]),
		}
	}), nil
}

func reasons(target, candidate Product) []string {
	var rs []string
	if target.Category == candidate.Category {
		rs = append(rs, "Same category")
	}

	if target.Brand == candidate.Brand {
		rs = append(rs, "Same brand")
	}

	if math.Abs(target.Price-candidate.Price) <= PriceRange {
		rs = append(rs, "Similar price range")
	}

	if target.Rating >= HighRating && candidate.Rating >= HighRating {
		rs = append(rs, "Both are highly rated")
	}

	if len(rs) == 0 {
		return []string{"Similar customer preferences"}
	}
	return rs
}

// ReadCatalog decodes a JSON array of products.
func ReadCatalog(r io.Reader) ([]Product, error) {
	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	if len(products) == 0 {
		return nil, errors.New("catalog is empty")
	}

	return products, nil
}
