// Package config provides configuration management for the render worker.
//
// Configuration is loaded from environment variables and validated on startup.
// All configuration options have sensible defaults for development.
//
// Condition helpers are declared as a ";" separated list of name=expression
// pairs, the expression being CEL:
//
//	CONDITIONS="adult=scope.age >= 18;vip=data.plan == 'gold'"
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
