// Package environment carries the application environment (development,
// staging, production) through context.Context and into structured logs.
//
//	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "validation completed") // adds env=production
//
// Parse accepts the short aliases "dev", "stage" and "prod".
package environment
