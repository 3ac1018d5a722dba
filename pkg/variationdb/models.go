package variationdb

// The schema follows the shape of public variation archives: variants,
// their genomic placements (variation features) and precomputed
// pairwise LD rows per population.

type Population struct {
	ID          int64  `gorm:"primaryKey;column:population_id"`
	Name        string `gorm:"uniqueIndex;size:255"`
	Size        int
	Description string
}

func (Population) TableName() string { return "population" }

type Variation struct {
	ID   int64  `gorm:"primaryKey;column:variation_id"`
	Name string `gorm:"uniqueIndex;size:255"`
}

func (Variation) TableName() string { return "variation" }

// VariationFeature is one genomic placement of a variant. The variant
// name is denormalized onto the row, as variation archives do.
type VariationFeature struct {
	ID             int64  `gorm:"primaryKey;column:variation_feature_id"`
	VariationID    int64  `gorm:"index"`
	VariationName  string `gorm:"index;size:255"`
	SeqRegionName  string `gorm:"index;size:64"`
	SeqRegionStart int64
	SeqRegionEnd   int64
}

func (VariationFeature) TableName() string { return "variation_feature" }

// PairwiseLD is one precomputed r2/D' value between two variants in one
// population on one sequence region.
type PairwiseLD struct {
	ID             int64  `gorm:"primaryKey"`
	PopulationID   int64  `gorm:"index"`
	SeqRegionName  string `gorm:"index;size:64"`
	VariationName1 string `gorm:"index;size:255"`
	VariationName2 string `gorm:"index;size:255"`
	R2             float64
	DPrime         float64
	SampleCount    int
}

func (PairwiseLD) TableName() string { return "pairwise_ld" }
