// Package graphql is the single HTTP transport shared by every SDK service.
//
// A Client posts GraphQL documents to the configured endpoint with the DashX
// authentication headers (X-Public-Key, X-Private-Key, X-Target-Environment)
// over a pooled keep-alive transport sized from config.Config.
//
// # Usage
//
//	c, err := graphql.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	resp, err := c.Execute(ctx, `query Asset($id: UUID!) { asset(id: $id) { id url } }`,
//		map[string]any{"id": id})
//	if err != nil {
//		return err
//	}
//	var asset model.Asset
//	err = resp.Extract("asset", &asset)
//
// # Errors
//
// A response whose "errors" list is non-empty is returned as *Error and is
// classified as dashxerr.KindGraphQL. Network failures and non-2xx responses
// without a GraphQL body are dashxerr.KindTransport.
//
// # Selection Sets
//
// Projection renders the field list of a selection set. The SDK ships the
// projections it requests for each result type (AccountProjection,
// AssetProjection and so on).
package graphql
