// Package api provides the HTTP REST API and WebSocket event feed for the
// Gadget Armoury.
//
// It exposes agent registration and login, the gadget lifecycle endpoints,
// and a real-time event stream at /events. Every gadget endpoint sits
// behind the JWT bearer-token gate; register and login are open.
//
// The server follows the same lifecycle pattern as the infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Error responses share one envelope: {"status": 404, "code": "not_found",
// "message": "gadget not found"}.
//
// Thread Safety: all methods are safe for concurrent use from multiple
// goroutines.
package api
