package sdk

import (
	"context"

	"github.com/dashxhq/dashx-go/pkg/graphql"
	"github.com/dashxhq/dashx-go/pkg/model"
)

// Executor runs a GraphQL document. *graphql.Client implements it.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) (*graphql.Response, error)
}

var (
	identifyAccountDoc = `mutation IdentifyAccount($input: IdentifyAccountInput!) { identifyAccount(input: $input) ` +
		graphql.AccountProjection.String() + ` }`
	trackEventDoc = `mutation TrackEvent($input: TrackEventInput!) { trackEvent(input: $input) ` +
		graphql.TrackEventProjection.String() + ` }`
	assetDoc = `query Asset($id: UUID!) { asset(id: $id) ` +
		graphql.AssetProjection.String() + ` }`
	assetsListDoc = `query AssetsList($filter: JSON, $order: [JSON!], $limit: Int, $page: Int) ` +
		`{ assetsList(filter: $filter, order: $order, limit: $limit, page: $page) ` +
		graphql.AssetProjection.String() + ` }`
	prepareAssetDoc = `mutation PrepareAsset($input: PrepareAssetInput!) { prepareAsset(input: $input) ` +
		graphql.AssetProjection.String() + ` }`
	searchRecordsDoc = `query SearchRecords($input: SearchRecordsInput!) { searchRecords(input: $input) }`
	createIssueDoc   = `mutation CreateIssue($input: CreateIssueInput!) { createIssue(input: $input) ` +
		graphql.IssueProjection.String() + ` }`
	upsertIssueDoc = `mutation UpsertIssue($input: UpsertIssueInput!) { upsertIssue(input: $input) ` +
		graphql.IssueProjection.String() + ` }`
	sendMessageDoc = `mutation SendMessage($input: SendMessageInput!) { sendMessage(input: $input) ` +
		graphql.MessageProjection.String() + ` }`
)

// run executes doc and decodes data.<field> into out.
func run(ctx context.Context, exec Executor, doc, field string, vars map[string]any, out any) error {
	resp, err := exec.Execute(ctx, doc, vars)
	if err != nil {
		return err
	}
	return resp.Extract(field, out)
}

// AccountService identifies accounts.
type AccountService struct{ exec Executor }

func NewAccountService(exec Executor) *AccountService { return &AccountService{exec: exec} }

// Identify runs identifyAccount.
func (s *AccountService) Identify(ctx context.Context, in model.IdentifyAccountInput) (*model.Account, error) {
	var out model.Account
	if err := run(ctx, s.exec, identifyAccountDoc, "identifyAccount", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventService records analytics events.
type EventService struct{ exec Executor }

func NewEventService(exec Executor) *EventService { return &EventService{exec: exec} }

// Track runs trackEvent.
func (s *EventService) Track(ctx context.Context, in model.TrackEventInput) (*model.TrackEventResponse, error) {
	var out model.TrackEventResponse
	if err := run(ctx, s.exec, trackEventDoc, "trackEvent", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssetService reads and prepares assets.
type AssetService struct{ exec Executor }

func NewAssetService(exec Executor) *AssetService { return &AssetService{exec: exec} }

// Get runs asset(id). It returns nil without error when the asset is absent.
func (s *AssetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	var out *model.Asset
	if err := run(ctx, s.exec, assetDoc, "asset", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List runs assetsList. Unset options are not sent.
func (s *AssetService) List(ctx context.Context, opts model.ListAssetsOptions) ([]model.Asset, error) {
	vars := map[string]any{}
	if opts.Filter != nil {
		vars["filter"] = opts.Filter
	}
	if opts.Order != nil {
		vars["order"] = opts.Order
	}
	if opts.Limit != nil {
		vars["limit"] = *opts.Limit
	}
	if opts.Page != nil {
		vars["page"] = *opts.Page
	}

	out := []model.Asset{}
	if err := run(ctx, s.exec, assetsListDoc, "assetsList", vars, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Prepare runs prepareAsset, which reserves the asset and returns a signed
// upload URL in its data.
func (s *AssetService) Prepare(ctx context.Context, in model.PrepareAssetInput) (*model.Asset, error) {
	var out model.Asset
	if err := run(ctx, s.exec, prepareAssetDoc, "prepareAsset", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordService searches CMS records.
type RecordService struct{ exec Executor }

func NewRecordService(exec Executor) *RecordService { return &RecordService{exec: exec} }

// Search runs searchRecords. A null result is returned as an empty slice.
func (s *RecordService) Search(ctx context.Context, in model.SearchRecordsInput) ([]map[string]any, error) {
	out := []map[string]any{}
	if err := run(ctx, s.exec, searchRecordsDoc, "searchRecords", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IssueService creates and upserts issues.
type IssueService struct{ exec Executor }

func NewIssueService(exec Executor) *IssueService { return &IssueService{exec: exec} }

func (s *IssueService) Create(ctx context.Context, in model.CreateIssueInput) (*model.Issue, error) {
	var out model.Issue
	if err := run(ctx, s.exec, createIssueDoc, "createIssue", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *IssueService) Upsert(ctx context.Context, in model.UpsertIssueInput) (*model.Issue, error) {
	var out model.Issue
	if err := run(ctx, s.exec, upsertIssueDoc, "upsertIssue", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MessageService sends WhatsApp and email messages.
type MessageService struct{ exec Executor }

func NewMessageService(exec Executor) *MessageService { return &MessageService{exec: exec} }

func (s *MessageService) Send(ctx context.Context, in model.SendMessageInput) (*model.Message, error) {
	var out model.Message
	if err := run(ctx, s.exec, sendMessageDoc, "sendMessage", map[string]any{"input": in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// services is the lazily built set bound to one transport.
type services struct {
	accounts *AccountService
	events   *EventService
	assets   *AssetService
	records  *RecordService
	issues   *IssueService
	messages *MessageService
}

func newServices(exec Executor) *services {
	return &services{
		accounts: NewAccountService(exec),
		events:   NewEventService(exec),
		assets:   NewAssetService(exec),
		records:  NewRecordService(exec),
		issues:   NewIssueService(exec),
		messages: NewMessageService(exec),
	}
}
