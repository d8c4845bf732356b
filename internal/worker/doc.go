// Package worker implements the render worker lifecycle and Redis Streams integration.
//
// The worker subscribes to a Redis Stream of render jobs, renders each job's
// template against its data, and publishes the output to a result stream.
// A job either carries its template inline or names a template kept in the
// template store:
//
//	{"job_id": "42", "template": "Hello {{name}}!", "data": {"name": "Ann"}}
//	{"job_id": "43", "template_name": "welcome", "data": {"name": "Bob"}}
//
// Example usage:
//
//	cfg, _ := config.Load()
//	redisClient := redis.NewClient(&redis.Options{...})
//	engine := template.NewEngine(logger)
//	templates := store.NewTemplateStore(redisClient, logger)
//
//	worker := worker.NewWorker(cfg, redisClient, engine, templates, logger)
//	if err := worker.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer worker.Stop(ctx)
//
// Failed jobs are reported on the "<result stream>.errors" stream. Every
// message is acknowledged, whether it rendered or not.
//
// Health checks are provided via a separate HTTP server:
//
//	healthServer := worker.NewHealthServer(8082, redisClient, logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
