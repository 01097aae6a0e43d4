// Package sdk is the entry point of the DashX Go SDK.
//
// # Quick Start
//
// Configure the default instance once, then call operations from anywhere:
//
//	import (
//		"github.com/dashxhq/dashx-go/pkg/config"
//		"github.com/dashxhq/dashx-go/pkg/sdk"
//	)
//
//	func main() {
//		dx := sdk.Default()
//		if err := dx.Configure(&config.Config{
//			PublicKey:         "YOUR_PUBLIC_KEY",
//			PrivateKey:        "YOUR_PRIVATE_KEY",
//			TargetEnvironment: "staging",
//		}); err != nil {
//			log.Fatal(err)
//		}
//		defer dx.Close()
//
//		ctx := context.Background()
//		if _, err := dx.Identify(ctx, map[string]string{"uid": "42", "email": "jo@example.com"}); err != nil {
//			log.Fatal(err)
//		}
//		if _, err := dx.Track(ctx, "Signed Up", "", map[string]any{"plan": "pro"}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Instances
//
// Instance(name) returns a process-wide client per name, created lazily and
// unconfigured. Use named instances to talk to several workspaces or
// environments from one process. RemoveInstance and ResetInstances close and
// forget them.
//
// Configure may be called again at any time. The previous transport is closed
// and the per-domain services are rebuilt against the new one on next use.
//
// # Identity
//
// Identify and Track remember the account they operate on. Track without a
// uid uses the remembered uid, or an anonymous uid generated once per
// instance. Reset forgets both.
//
// # Errors
//
// Argument checks run before anything else and fail with
// dashxerr.ErrValidation. Calling an operation before Configure fails with
// dashxerr.ErrConfiguration. Errors reported by the API are *graphql.Error
// (kind dashxerr.KindGraphQL); network failures are dashxerr.KindTransport.
//
// # Logging
//
// The package installs a console zap logger at info level in init. Setting
// config.Config.Debug raises it to debug, which logs every operation and
// GraphQL round trip. Replace it with zap.ReplaceGlobals for custom output.
package sdk
