// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package supervisor provides Suture-based process supervision for Searchrec.

The tree has two layers under a root supervisor:

	searchrec (root)
	├── messaging-layer
	│   └── event-consumer      (events.Consumer, Watermill router)
	└── api-layer
	    └── http-server         (services.HTTPServerService)

A crash in one layer is restarted by its own supervisor with backoff and
does not stop the other: the HTTP API keeps answering while the event
consumer restarts. Supervisor events are logged through sutureslog, which
takes a *slog.Logger; logging.NewSlogLogger bridges it to zerolog.

Example:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(consumer)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor
