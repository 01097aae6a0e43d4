package sdk

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel backs the global logger installed in init so Configure can raise
// it to debug without rebuilding the logger.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// SetDebug toggles debug output of the logger installed by this package. The
// next Configure or Close recomputes the level from the configured instances.
func SetDebug(on bool) {
	if on {
		logLevel.SetLevel(zapcore.DebugLevel)
		return
	}
	logLevel.SetLevel(zapcore.InfoLevel)
}

// debugMu serializes level recomputation so concurrent Configure calls
// cannot leave a stale level behind.
var debugMu sync.Mutex

// syncDebugLevel sets the logger to debug while any registered, configured
// instance has Debug set, and back to info otherwise. extra covers an instance
// outside the registry.
func syncDebugLevel(extra bool) {
	debugMu.Lock()
	defer debugMu.Unlock()

	registryMu.Lock()
	clients := make([]*Client, 0, len(registry))
	for _, c := range registry {
		clients = append(clients, c)
	}
	registryMu.Unlock()

	on := extra
	for _, c := range clients {
		if on {
			break
		}
		on = c.debugEnabled()
	}
	SetDebug(on)
}

// DefaultInstanceName is the registry key used by Default.
const DefaultInstanceName = "default"

var (
	registryMu sync.Mutex
	registry   = map[string]*Client{}
)

// Instance returns the client registered under name, creating an
// unconfigured one on first use. The same name yields the same pointer until
// it is removed.
func Instance(name string) *Client {
	registryMu.Lock()
	defer registryMu.Unlock()

	if c, ok := registry[name]; ok {
		return c
	}
	c := newClient(name)
	registry[name] = c
	zap.L().Debug("created dashx instance", zap.String("name", name))
	return c
}

// Default returns the client registered as "default".
func Default() *Client {
	return Instance(DefaultInstanceName)
}

// RemoveInstance closes and forgets the client registered under name. It is a
// no-op for unknown names.
func RemoveInstance(name string) {
	registryMu.Lock()
	c, ok := registry[name]
	delete(registry, name)
	registryMu.Unlock()

	if ok {
		c.Close()
	}
}

// ResetInstances closes and forgets every registered client.
func ResetInstances() {
	registryMu.Lock()
	old := registry
	registry = map[string]*Client{}
	registryMu.Unlock()

	for _, c := range old {
		c.Close()
	}
}

// InstanceNames returns the names currently registered, in no particular
// order.
func InstanceNames() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
