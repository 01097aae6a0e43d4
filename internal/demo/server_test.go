package demo

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/graphql"
	"github.com/dashxhq/dashx-go/pkg/model"
)

type fakeDashX struct {
	identifyOpts map[string]string
	trackEvent   string
	trackUID     string
	trackData    map[string]any
	listOpts     model.ListAssetsOptions
	searchRes    string
	searchOpts   *model.SearchRecordsOptions
	created      *model.CreateIssueInput
	upserted     *model.UpsertIssueInput
	sent         *model.SendMessageInput

	asset *model.Asset
	err   error
}

func (f *fakeDashX) Identify(_ context.Context, options map[string]string) (*model.Account, error) {
	f.identifyOpts = options
	if f.err != nil {
		return nil, f.err
	}
	return &model.Account{ID: "acc-1", UID: model.String(options["uid"]), Email: model.String(options["email"])}, nil
}

func (f *fakeDashX) Track(_ context.Context, event, uid string, data map[string]any) (*model.TrackEventResponse, error) {
	f.trackEvent, f.trackUID, f.trackData = event, uid, data
	if f.err != nil {
		return nil, f.err
	}
	return &model.TrackEventResponse{Success: true}, nil
}

func (f *fakeDashX) GetAsset(_ context.Context, id string) (*model.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.asset, nil
}

func (f *fakeDashX) ListAssets(_ context.Context, opts model.ListAssetsOptions) ([]model.Asset, error) {
	f.listOpts = opts
	return []model.Asset{{ID: "a-1"}}, f.err
}

func (f *fakeDashX) SearchRecords(_ context.Context, resource string, opts *model.SearchRecordsOptions) ([]map[string]any, error) {
	f.searchRes, f.searchOpts = resource, opts
	return []map[string]any{{"id": "r-1"}}, f.err
}

func (f *fakeDashX) CreateIssue(_ context.Context, in *model.CreateIssueInput) (*model.Issue, error) {
	f.created = in
	return &model.Issue{ID: "i-1", Title: in.Title}, f.err
}

func (f *fakeDashX) UpsertIssue(_ context.Context, in *model.UpsertIssueInput) (*model.Issue, error) {
	f.upserted = in
	return &model.Issue{ID: "i-1", Title: in.Title, IdempotencyKey: in.IdempotencyKey}, f.err
}

func (f *fakeDashX) SendMessage(_ context.Context, in *model.SendMessageInput) (*model.Message, error) {
	f.sent = in
	return &model.Message{ID: "m-1"}, f.err
}

func newTestHandler(dx DashX) http.Handler {
	reg := prometheus.NewRegistry()
	return NewHandler(dx, reg, reg)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWelcome(t *testing.T) {
	rec := get(t, newTestHandler(&fakeDashX{}), "/welcome")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the DashX Demo!", rec.Body.String())
}

func TestIdentify_PassesQueryAsOptions(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/identify?uid=42&email=jo@example.com")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"uid": "42", "email": "jo@example.com"}, dx.identifyOpts)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "acc-1", body["id"])
	assert.Equal(t, "42", body["uid"])
	assert.Contains(t, body, "anonymousUid")
}

func TestTrack(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/track?event=Signed%20Up&uid=u-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Signed Up", dx.trackEvent)
	assert.Equal(t, "u-1", dx.trackUID)
	assert.Equal(t, map[string]any{"status": "success", "event": "Signed Up"}, decode[map[string]any](t, rec))
}

func TestTrack_MissingEvent(t *testing.T) {
	rec := get(t, newTestHandler(&fakeDashX{}), "/track")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "/track", body.Path)
	assert.Contains(t, body.Message, "event")
	assert.NotEmpty(t, body.Timestamp)
}

func TestTrackWithData(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/track-with-data?event=Clicked&dataKey=button&dataValue=buy")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"button": "buy"}, dx.trackData)

	dx = &fakeDashX{}
	get(t, newTestHandler(dx), "/track-with-data?event=Clicked&dataKey=button")
	assert.Empty(t, dx.trackData, "data needs both key and value")
}

func TestGetAsset(t *testing.T) {
	dx := &fakeDashX{asset: &model.Asset{ID: "a-1", URL: model.String("https://cdn/a.png")}}
	rec := get(t, newTestHandler(dx), "/get-asset?id=a-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"id": "a-1", "url": "https://cdn/a.png"}, decode[map[string]any](t, rec))

	rec = get(t, newTestHandler(&fakeDashX{}), "/get-asset?id=missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssets(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/list-assets?resourceId=r-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"resourceId": map[string]any{"eq": "r-1"}}, dx.listOpts.Filter)

	dx = &fakeDashX{}
	get(t, newTestHandler(dx), "/list-assets")
	assert.Nil(t, dx.listOpts.Filter)
}

func TestListAssetsFiltered_DefaultDirection(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/list-assets-filtered?orderField=createdAt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, dx.listOpts.Filter)
	assert.Equal(t, []map[string]any{{"createdAt": "desc"}}, dx.listOpts.Order)

	get(t, newTestHandler(dx), "/list-assets-filtered?orderField=name&orderDirection=asc")
	assert.Equal(t, []map[string]any{{"name": "asc"}}, dx.listOpts.Order)
}

func TestSearchRecords(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/search-records?resource=users&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "users", dx.searchRes)
	require.NotNil(t, dx.searchOpts.Limit)
	assert.Equal(t, 5, *dx.searchOpts.Limit)
	assert.Nil(t, dx.searchOpts.Page)
	assert.Equal(t, []map[string]any{{"createdAt": "desc"}}, dx.searchOpts.Order)

	rec = get(t, newTestHandler(dx), "/search-records?resource=users&limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidParameterError", decode[ErrorResponse](t, rec).ExceptionType)
}

func TestCreateIssue(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/create-issue?title=Broken&issueType=Bug")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dx.created)
	assert.Equal(t, "Broken", dx.created.Title)
	assert.Equal(t, "Bug", model.Deref(dx.created.IssueType))
	assert.Nil(t, dx.created.IssueStatus)
	assert.Equal(t, "Test Group", model.Deref(dx.created.Group))
	assert.Equal(t, []string{"Test1", "Test2"}, dx.created.Labels)
	assert.Equal(t, map[string]any{"uid": "123", "name": "John Doe"}, dx.created.RequestedBy)
}

func TestUpsertIssue(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/upsert-issue?title=Broken&idempotencyKey=k-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "k-1", model.Deref(dx.upserted.IdempotencyKey))
	assert.Nil(t, dx.upserted.RequestedBy)

	get(t, newTestHandler(dx), "/upsert-issue?title=Broken")
	assert.Nil(t, dx.upserted.IdempotencyKey)
}

func TestSendWhatsApp(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/send-whatsapp?body=hi&integrationId=int-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.TemplateSubkindWhatsApp, dx.sent.TemplateSubkind)
	assert.Equal(t, "text", dx.sent.Content["type"])

	rec = get(t, newTestHandler(dx), "/send-whatsapp?template=order_shipped&language=en&params=Jo,1042")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "template", dx.sent.Content["type"])

	rec = get(t, newTestHandler(dx), "/send-whatsapp")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty body fails builder validation")
}

func TestSendEmail(t *testing.T) {
	dx := &fakeDashX{}
	rec := get(t, newTestHandler(dx), "/send-email?to=jo@example.com&subject=Hi&text=hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.TemplateSubkindEmail, dx.sent.TemplateSubkind)
	assert.Equal(t, []any{"jo@example.com"}, dx.sent.Content["to"])

	rec = get(t, newTestHandler(dx), "/send-email?to=jo@example.com")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		exType   string
		contains string
	}{
		{
			name:   "validation",
			err:    dashxerr.Validation("dashx.track", "Event name cannot be null or empty"),
			status: http.StatusBadRequest, exType: "ValidationError", contains: "Event name cannot be null or empty",
		},
		{
			name:   "graphql",
			err:    dashxerr.Wrap("graphql.execute", dashxerr.KindGraphQL, &graphql.Error{Errors: []graphql.ErrorDetail{{Message: "boom"}}}),
			status: http.StatusInternalServerError, exType: "GraphQLError", contains: "GraphQL error: boom",
		},
		{
			name:   "configuration",
			err:    dashxerr.Configuration("dashx.track", "client is not configured; call Configure first"),
			status: http.StatusInternalServerError, exType: "ConfigurationError", contains: "not configured",
		},
		{
			name:   "other",
			err:    errors.New("disk on fire"),
			status: http.StatusInternalServerError, exType: "Error", contains: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestHandler(&fakeDashX{err: tt.err}), "/track?event=x")
			require.Equal(t, tt.status, rec.Code)
			body := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.exType, body.ExceptionType)
			assert.Contains(t, body.Message, tt.contains)
			assert.True(t, strings.HasPrefix(body.Message, "failed to track event 'x'"))
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := get(t, newTestHandler(&fakeDashX{}), "/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, "Route not found: /nope", body.Message)
	assert.Equal(t, "NotFound", body.ExceptionType)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&fakeDashX{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/track?event=x", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, http.StatusMethodNotAllowed, body.Status)
	assert.Equal(t, "Method POST not allowed for /track", body.Message)
	assert.Equal(t, "MethodNotAllowed", body.ExceptionType)
	assert.Equal(t, "/track", body.Path)
}

func TestMetricsAndHealth(t *testing.T) {
	h := newTestHandler(&fakeDashX{})
	get(t, h, "/welcome")

	rec := get(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "healthy"}, decode[map[string]any](t, rec))

	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashx_demo_requests_total{route="/welcome",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(&fakeDashX{})
	req := httptest.NewRequest(http.MethodOptions, "/welcome", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("listen not permitted: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{Handler: newTestHandler(&fakeDashX{})}
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/welcome")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
