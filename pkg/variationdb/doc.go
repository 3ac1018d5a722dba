// Package variationdb backs the annotator's collaborator interfaces
// with a relational variation database accessed through GORM.
//
// It implements all four lookups the plugin consumes: population
// resolution, variant resolution, placement listing and pairwise LD
// retrieval. The schema mirrors the shape of public variation archives
// (population, variation, variation_feature, pairwise_ld), with
// precomputed r2/D' values per population.
//
// Both PostgreSQL and MySQL/MariaDB are supported via the Driver
// connection setting; public archives are typically MySQL mirrors.
//
// Missing records are reported as annotator.ErrNotFound so the
// annotator can skip silently; any other database error propagates to
// the host pipeline.
//
// FX Integration:
//
//	app := fx.New(
//		variationdb.FXModule,
//		fx.Provide(
//			func() variationdb.Config { return loadVariationDBConfig() },
//			fx.Annotate(logger.NewLoggerClient, fx.As(new(variationdb.Logger))),
//		),
//	)
//
// The fx module binds the Store to each annotator collaborator
// interface and closes the connection on shutdown.
package variationdb
