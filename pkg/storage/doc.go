// Package storage moves asset bytes to and from the signed URLs handed out by
// the DashX API.
//
// prepareAsset returns a short-lived signed URL; the file body is PUT there
// directly, bypassing the GraphQL endpoint. Published assets expose a public
// URL that Fetch downloads.
//
//	c := storage.NewClient(httpClient, 60*time.Second)
//	err := c.Upload(ctx, signedURL, storage.ContentTypeFor("avatar.png", ""), data)
//
// # Content Types
//
// When the caller does not know the exact MIME type, ContentTypeFor falls back
// to the broad media classes the API accepts:
//
//	image/*  for image extensions
//	video/*  for video extensions
//	*/*      for everything else
package storage
