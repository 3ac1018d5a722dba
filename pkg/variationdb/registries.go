package variationdb

import (
	"context"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// ResolvePopulation looks up a reference cohort by name.
func (s *Store) ResolvePopulation(ctx context.Context, name string) (*annotator.Population, error) {
	var row Population
	if err := s.client.WithContext(ctx).First(&row, "name = ?", name).Error; err != nil {
		return nil, TranslateError(err)
	}

	return &annotator.Population{
		ID:          row.ID,
		Name:        row.Name,
		Size:        row.Size,
		Description: row.Description,
	}, nil
}

// ResolveVariant looks up a variant by its stable identifier.
func (s *Store) ResolveVariant(ctx context.Context, identifier string) (*annotator.Variant, error) {
	var row Variation
	if err := s.client.WithContext(ctx).First(&row, "name = ?", identifier).Error; err != nil {
		return nil, TranslateError(err)
	}

	return &annotator.Variant{ID: row.ID, Name: row.Name}, nil
}

// Placements returns every genomic placement of the variant, in
// primary-key order.
func (s *Store) Placements(ctx context.Context, variant *annotator.Variant) ([]annotator.Placement, error) {
	var rows []VariationFeature
	err := s.client.WithContext(ctx).
		Where("variation_id = ?", variant.ID).
		Order("variation_feature_id").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	placements := make([]annotator.Placement, 0, len(rows))
	for _, row := range rows {
		placements = append(placements, annotator.Placement{
			VariantName: row.VariationName,
			RegionName:  row.SeqRegionName,
			Start:       row.SeqRegionStart,
			End:         row.SeqRegionEnd,
		})
	}
	return placements, nil
}

// LDValues returns the precomputed pairwise LD rows naming the
// placement's variant on its sequence region, for the given population.
// No rows means no LD container exists for the placement/population
// pair, reported as annotator.ErrNotFound.
func (s *Store) LDValues(ctx context.Context, placement annotator.Placement, population *annotator.Population) ([]annotator.LDPair, error) {
	var rows []PairwiseLD
	err := s.client.WithContext(ctx).
		Where("population_id = ? AND seq_region_name = ?", population.ID, placement.RegionName).
		Where("variation_name1 = ? OR variation_name2 = ?", placement.VariantName, placement.VariantName).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	if len(rows) == 0 {
		return nil, annotator.ErrNotFound
	}

	pairs := make([]annotator.LDPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, annotator.LDPair{
			VariationName1: row.VariationName1,
			VariationName2: row.VariationName2,
			R2:             row.R2,
		})
	}
	return pairs, nil
}
