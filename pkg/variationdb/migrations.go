package variationdb

// Migrate creates or updates the variation schema. Intended for tests
// and self-hosted mirrors; public archives ship their own schema.
func (s *Store) Migrate() error {
	return s.client.AutoMigrate(
		&Population{},
		&Variation{},
		&VariationFeature{},
		&PairwiseLD{},
	)
}
