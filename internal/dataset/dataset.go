package dataset

import (
	"github.com/pgEdge/pgedge-findata/internal/datagen"
)

// Generate validates p, builds the dataset from f and writes it under root.
// It returns the row counts and the partition directory. On any error
// nothing is left under root for this partition.
func Generate(f *datagen.Faker, p Params, root string) (Counts, string, error) {
	ds, err := NewGenerator(f).Generate(p)
	if err != nil {
		return Counts{}, "", err
	}

	dir, err := Write(root, ds)
	if err != nil {
		return Counts{}, "", err
	}
	return ds.Counts(), dir, nil
}
