package catalog

import (
	"time"

	"carmatch/internal/vehicle"
)

// Index is an immutable, queryable view over one set of catalog records.
// Records are normalized once at build time; no mutation happens after
// NewIndex returns, so concurrent readers need no locking.
type Index struct {
	records   []*vehicle.Spec
	byMake    map[string][]*vehicle.Spec
	byNatcode map[string]*vehicle.Spec
	oemCodes  map[string]int
	builtAt   time.Time
}

// NewIndex normalizes the given records and builds the lookup maps.
// Catalog iteration order is preserved within each make bucket; the
// classifier's tie-break depends on it.
func NewIndex(records []vehicle.Spec) *Index {
	idx := &Index{
		records:   make([]*vehicle.Spec, 0, len(records)),
		byMake:    make(map[string][]*vehicle.Spec),
		byNatcode: make(map[string]*vehicle.Spec, len(records)),
		oemCodes:  make(map[string]int),
		builtAt:   time.Now().UTC(),
	}
	for i := range records {
		rec := records[i]
		rec.Normalize()
		spec := &rec
		idx.records = append(idx.records, spec)
		if spec.MakeNorm != "" {
			idx.byMake[spec.MakeNorm] = append(idx.byMake[spec.MakeNorm], spec)
		}
		if spec.Natcode != "" {
			idx.byNatcode[spec.Natcode] = spec
		}
		if code := spec.OEMCodeUpper(); code != "" {
			idx.oemCodes[code]++
		}
	}
	return idx
}

// ByMake returns the records for one normalized make, in catalog order.
func (idx *Index) ByMake(make string) []*vehicle.Spec {
	return idx.byMake[make]
}

// ByNatcode resolves one record by its catalog identifier.
func (idx *Index) ByNatcode(natcode string) (*vehicle.Spec, bool) {
	spec, ok := idx.byNatcode[natcode]
	return spec, ok
}

// Len is the number of indexed records.
func (idx *Index) Len() int { return len(idx.records) }

// MakeCount is the number of distinct normalized makes.
func (idx *Index) MakeCount() int { return len(idx.byMake) }

// OEMCodeCount is the number of distinct OEM codes present.
func (idx *Index) OEMCodeCount() int { return len(idx.oemCodes) }

// BuiltAt reports when this index was constructed.
func (idx *Index) BuiltAt() time.Time { return idx.builtAt }
