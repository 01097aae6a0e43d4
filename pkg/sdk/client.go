package sdk

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dashxhq/dashx-go/pkg/config"
	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/graphql"
	"github.com/dashxhq/dashx-go/pkg/model"
	"github.com/dashxhq/dashx-go/pkg/storage"
)

// Keys read from the options passed to Identify.
const (
	OptionUID          = "uid"
	OptionAnonymousUID = "anonymousUid"
	OptionEmail        = "email"
	OptionPhone        = "phone"
	OptionName         = "name"
	OptionFirstName    = "firstName"
	OptionLastName     = "lastName"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultPollAttempts = 10
)

// Client is one named DashX instance. Obtain it from Instance or Default and
// call Configure before any operation. A Client is safe for concurrent use.
type Client struct {
	name string

	mu    sync.RWMutex
	cfg   *config.Config
	gql   *graphql.Client
	svc   *services
	store storage.Storage

	accountUID   string
	anonymousUID string

	newUUID      func() string
	pollInterval time.Duration
	pollAttempts int
}

func newClient(name string) *Client {
	return &Client{
		name:         name,
		newUUID:      func() string { return uuid.NewString() },
		pollInterval: defaultPollInterval,
		pollAttempts: defaultPollAttempts,
	}
}

// Name returns the registry name of the instance.
func (c *Client) Name() string { return c.name }

// Configure validates cfg and (re)builds the transport. Services built
// against a previous configuration are dropped and rebuilt lazily. cfg is
// copied, so later changes by the caller have no effect.
func (c *Client) Configure(cfg *config.Config) error {
	const op = "dashx.configure"

	if cfg == nil {
		return dashxerr.Validation(op, "configuration cannot be nil")
	}
	cp := *cfg
	gql, err := graphql.NewClient(&cp)
	if err != nil {
		return err
	}
	c.mu.Lock()
	old := c.gql
	c.cfg = &cp
	c.gql = gql
	c.svc = nil
	c.store = storage.NewClient(gql.HTTPClient(), cp.Timeouts.Upload)
	c.mu.Unlock()

	old.Close()
	syncDebugLevel(cp.Debug)

	zap.L().Debug("dashx instance configured",
		zap.String("instance", c.name),
		zap.String("base_url", cp.BaseURL),
		zap.String("target_environment", cp.TargetEnvironment),
	)
	return nil
}

// Configured reports whether Configure has succeeded and Close has not been
// called since.
func (c *Client) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gql != nil
}

// Config returns a copy of the active configuration, or nil when the client
// is not configured.
func (c *Client) Config() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cfg == nil {
		return nil
	}
	cp := *c.cfg
	return &cp
}

// Close releases the transport and forgets the configuration. The client
// must be configured again before further use.
func (c *Client) Close() {
	c.mu.Lock()
	old := c.gql
	c.cfg = nil
	c.gql = nil
	c.svc = nil
	c.store = nil
	c.mu.Unlock()

	old.Close()
	syncDebugLevel(false)
}

func (c *Client) debugEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gql != nil && c.cfg != nil && c.cfg.Debug
}

// Identity returns the remembered uid and anonymous uid.
func (c *Client) Identity() (uid, anonymousUID string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountUID, c.anonymousUID
}

// Reset forgets the remembered uid and anonymous uid.
func (c *Client) Reset() {
	c.mu.Lock()
	c.accountUID, c.anonymousUID = "", ""
	c.mu.Unlock()
}

// services returns the service set for the current transport, building it on
// first use.
func (c *Client) services(op string) (*services, error) {
	c.mu.RLock()
	svc, gql := c.svc, c.gql
	c.mu.RUnlock()
	if svc != nil {
		return svc, nil
	}
	if gql == nil {
		return nil, errNotConfigured(op)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gql == nil {
		return nil, errNotConfigured(op)
	}
	if c.svc == nil {
		c.svc = newServices(c.gql)
	}
	return c.svc, nil
}

func errNotConfigured(op string) error {
	return dashxerr.Configuration(op, "client is not configured; call Configure first")
}

// Identify creates or updates the account described by options. Recognized
// keys are the Option* constants. uid and anonymousUid fall back to the
// identity remembered from earlier calls; when neither is known a fresh
// anonymous uid is generated.
func (c *Client) Identify(ctx context.Context, options map[string]string) (*model.Account, error) {
	const op = "dashx.identify"

	if options == nil {
		return nil, dashxerr.Validation(op, "'identify' cannot be called with nil, please pass options of type 'map'")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	rememberedUID, rememberedAnon := c.Identity()

	uid := rememberedUID
	if v, ok := options[OptionUID]; ok {
		uid = v
	}

	var anon string
	if v, ok := options[OptionAnonymousUID]; ok {
		anon = v
	} else if rememberedAnon != "" {
		anon = rememberedAnon
	} else if uid == "" {
		anon = c.newUUID()
	}

	in := model.IdentifyAccountInput{
		UID:          model.String(uid),
		AnonymousUID: model.String(anon),
		Email:        model.String(options[OptionEmail]),
		Phone:        model.String(options[OptionPhone]),
		Name:         model.String(options[OptionName]),
		FirstName:    model.String(options[OptionFirstName]),
		LastName:     model.String(options[OptionLastName]),
	}

	zap.L().Debug("identifying account", zap.String("uid", uid), zap.String("anonymous_uid", anon))
	account, err := svc.accounts.Identify(ctx, in)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if v := model.Deref(account.UID); v != "" {
		c.accountUID = v
	} else if uid != "" {
		c.accountUID = uid
	}
	if v := model.Deref(account.AnonymousUID); v != "" {
		c.anonymousUID = v
	} else if anon != "" {
		c.anonymousUID = anon
	}
	c.mu.Unlock()

	return account, nil
}

// Track records event for uid, or for the remembered identity when uid is
// empty. When a uid is known the anonymous uid is sent as null; otherwise the
// remembered anonymous uid is used, generating one if needed.
func (c *Client) Track(ctx context.Context, event, uid string, data map[string]any) (*model.TrackEventResponse, error) {
	const op = "dashx.track"

	if strings.TrimSpace(event) == "" {
		return nil, dashxerr.Validation(op, "Event name cannot be null or empty")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	accUID := uid
	if accUID == "" {
		accUID = c.accountUID
	}
	var anon string
	if accUID == "" {
		if c.anonymousUID == "" {
			c.anonymousUID = c.newUUID()
		}
		anon = c.anonymousUID
	}
	c.mu.Unlock()

	in := model.TrackEventInput{
		Event:               event,
		AccountUID:          model.String(accUID),
		AccountAnonymousUID: model.String(anon),
		Data:                data,
	}

	zap.L().Debug("tracking event", zap.String("event", event), zap.String("uid", accUID), zap.String("anonymous_uid", anon))
	return svc.events.Track(ctx, in)
}

// GetAsset returns the asset with id, or nil when it does not exist.
func (c *Client) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	const op = "dashx.get_asset"

	if strings.TrimSpace(id) == "" {
		return nil, dashxerr.Validation(op, "Asset ID cannot be null or empty")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("getting asset", zap.String("id", id))
	return svc.assets.Get(ctx, id)
}

// ListAssets returns assets matching opts. The zero value lists with server
// defaults.
func (c *Client) ListAssets(ctx context.Context, opts model.ListAssetsOptions) ([]model.Asset, error) {
	const op = "dashx.list_assets"

	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("listing assets", zap.Any("filter", opts.Filter), zap.Intp("limit", opts.Limit), zap.Intp("page", opts.Page))
	return svc.assets.List(ctx, opts)
}

// SearchRecords searches records of resource. nil opts is treated as empty
// options.
func (c *Client) SearchRecords(ctx context.Context, resource string, opts *model.SearchRecordsOptions) ([]map[string]any, error) {
	const op = "dashx.search_records"

	if strings.TrimSpace(resource) == "" {
		return nil, dashxerr.Validation(op, "Resource cannot be null or empty")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	in := opts.Input(resource)
	zap.L().Debug("searching records", zap.String("resource", resource), zap.Any("filter", in.Filter))
	return svc.records.Search(ctx, in)
}

// CreateIssue creates a new issue.
func (c *Client) CreateIssue(ctx context.Context, in *model.CreateIssueInput) (*model.Issue, error) {
	const op = "dashx.create_issue"

	if in == nil {
		return nil, dashxerr.Validation(op, "CreateIssueInput cannot be null")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("creating issue", zap.String("title", in.Title))
	return svc.issues.Create(ctx, *in)
}

// UpsertIssue creates an issue or updates the one matching its idempotency
// key.
func (c *Client) UpsertIssue(ctx context.Context, in *model.UpsertIssueInput) (*model.Issue, error) {
	const op = "dashx.upsert_issue"

	if in == nil {
		return nil, dashxerr.Validation(op, "UpsertIssueInput cannot be null")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("upserting issue", zap.String("title", in.Title), zap.Stringp("idempotency_key", in.IdempotencyKey))
	return svc.issues.Upsert(ctx, *in)
}

// SendMessage sends a WhatsApp or email message. Inputs are usually produced
// by the builders in package message.
func (c *Client) SendMessage(ctx context.Context, in *model.SendMessageInput) (*model.Message, error) {
	const op = "dashx.send_message"

	if in == nil {
		return nil, dashxerr.Validation(op, "SendMessageInput cannot be null")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("sending message", zap.String("subkind", string(in.TemplateSubkind)))
	return svc.messages.Send(ctx, *in)
}
