// Package fpl provides a client for the Fantasy Premier League API.
//
// # Architecture
//
// The package is organized around a single Client with one method per API
// endpoint:
//
//   - client.go: HTTP transport and the endpoint methods
//   - bootstrap.go: the bootstrap-static snapshot and lookup helpers
//   - errors.go: the error types returned by the client
//   - options.go: functional options for NewClient
//   - player.go, team.go, gameweek.go, fixture.go, live.go, user.go,
//     picks.go, transfer.go, league.go: the API data model
//
// # Usage
//
//	client := fpl.NewClient()
//
//	user, err := client.GetUser(ctx, 12345)
//	if err != nil {
//		return err
//	}
//	fmt.Println(user.Name, user.SummaryOverallPoints)
//
// The client works against the public read-only API. No credentials are
// required.
//
// # Bootstrap data
//
// GetBootstrapStatic always fetches fresh data. The lookup helpers
// (GetPlayer, GetTeams, GetStaticGameweeks and friends) share a lazily
// fetched snapshot instead, so repeated lookups cost one request. Call
// RefreshBootstrap to replace the snapshot.
//
// # Error Handling
//
// All failures are typed:
//
//	user, err := client.GetUser(ctx, 12345)
//	if err != nil {
//		var statusErr *fpl.StatusError
//		if errors.As(err, &statusErr) && statusErr.IsNotFound() {
//			// no such entry
//		}
//		return err
//	}
//
// *RequestError wraps transport failures, *StatusError carries non-2xx
// responses and *DecodeError wraps malformed response bodies. Lookups that
// miss on valid data return errors matching ErrNotFound.
package fpl
