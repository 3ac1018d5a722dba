// Package annotator implements the LD plugin for a variant-effect
// annotation pipeline.
//
// For each input variant the host pipeline calls Annotate with the
// current site and the upstream annotation fields. The annotator reads
// the Existing_variation field (known variants overlapping the site),
// fetches pairwise linkage-disequilibrium values for each of them
// against the configured population, filters by the r2 cutoff and
// contributes a single LinkedVariants entry:
//
//	rs10:0.879,rs1333049:0.943
//
// The annotator owns no data: population, variant and placement
// resolution and the LD computation itself are performed by injected
// collaborators (see Dependencies). Package variationdb provides
// database-backed implementations; package restld provides an HTTP
// implementation of the LDService.
//
// Configuration:
//
// Two positional, comma-separated startup parameters, both optional:
//
//	<population>,<r2_cutoff>
//
// parsed by ParseParams, defaulting to the 1000 Genomes pilot CEU
// low-coverage panel at r2 >= 0.8.
//
// FX Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		variationdb.FXModule,
//		annotator.FXModule,
//		fx.Provide(
//			func() annotator.Config { return annotator.DefaultConfig() },
//			fx.Annotate(logger.NewLoggerClient, fx.As(new(annotator.Logger))),
//		),
//	)
//
// Concurrency:
//
// The host invokes Annotate once per record, sequentially. The
// annotator holds only immutable state after construction and needs no
// synchronization of its own.
package annotator
