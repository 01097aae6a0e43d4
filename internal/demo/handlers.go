package demo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dashxhq/dashx-go/pkg/message"
	"github.com/dashxhq/dashx-go/pkg/model"
)

// DashX is the part of *sdk.Client the demo exposes.
type DashX interface {
	message.Sender
	Identify(ctx context.Context, options map[string]string) (*model.Account, error)
	Track(ctx context.Context, event, uid string, data map[string]any) (*model.TrackEventResponse, error)
	GetAsset(ctx context.Context, id string) (*model.Asset, error)
	ListAssets(ctx context.Context, opts model.ListAssetsOptions) ([]model.Asset, error)
	SearchRecords(ctx context.Context, resource string, opts *model.SearchRecordsOptions) ([]map[string]any, error)
	CreateIssue(ctx context.Context, in *model.CreateIssueInput) (*model.Issue, error)
	UpsertIssue(ctx context.Context, in *model.UpsertIssueInput) (*model.Issue, error)
}

// Group every demo issue is filed under. It must match a group name or id
// in the workspace.
const demoIssueGroup = "Test Group"

type handlers struct {
	dx DashX
}

func required(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("%w '%s'", errMissingParam, name)
	}
	return v, nil
}

func optionalInt(r *http.Request, name string) (*int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': not an integer", errInvalidParam, name)
	}
	return &n, nil
}

func resourceFilter(resourceID string) map[string]any {
	if resourceID == "" {
		return nil
	}
	return map[string]any{"resourceId": map[string]any{"eq": resourceID}}
}

func (h *handlers) welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the DashX Demo!"))
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *handlers) identify(w http.ResponseWriter, r *http.Request) {
	options := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			options[k] = v[0]
		}
	}

	acc, err := h.dx.Identify(r.Context(), options)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to identify user: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":           acc.ID,
		"firstName":    acc.FirstName,
		"lastName":     acc.LastName,
		"email":        acc.Email,
		"phone":        acc.Phone,
		"name":         acc.Name,
		"anonymousUid": acc.AnonymousUID,
		"uid":          acc.UID,
	})
}

func trackStatus(resp *model.TrackEventResponse) string {
	if resp != nil && resp.Success {
		return "success"
	}
	return "error"
}

func (h *handlers) track(w http.ResponseWriter, r *http.Request) {
	event, err := required(r, "event")
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.dx.Track(r.Context(), event, r.URL.Query().Get("uid"), nil)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to track event '%s': %w", event, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": trackStatus(resp), "event": event})
}

func (h *handlers) trackWithData(w http.ResponseWriter, r *http.Request) {
	event, err := required(r, "event")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	data := map[string]any{}
	if q.Has("dataKey") && q.Has("dataValue") {
		data[q.Get("dataKey")] = q.Get("dataValue")
	}

	resp, err := h.dx.Track(r.Context(), event, q.Get("uid"), data)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to track event '%s' with data: %w", event, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": trackStatus(resp), "event": event, "data": data})
}

func (h *handlers) getAsset(w http.ResponseWriter, r *http.Request) {
	id, err := required(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.dx.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to get asset with id '%s': %w", id, err))
		return
	}
	if asset == nil {
		writeErrorResponse(w, r, http.StatusNotFound, fmt.Sprintf("asset '%s' not found", id), "NotFound")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": asset.ID, "url": asset.URL})
}

func (h *handlers) listAssets(w http.ResponseWriter, r *http.Request) {
	opts := model.ListAssetsOptions{Filter: resourceFilter(r.URL.Query().Get("resourceId"))}

	assets, err := h.dx.ListAssets(r.Context(), opts)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to list assets: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *handlers) listAssetsFiltered(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ListAssetsOptions{Filter: resourceFilter(q.Get("resourceId"))}
	if field := q.Get("orderField"); field != "" {
		direction := "desc"
		if q.Has("orderDirection") {
			direction = q.Get("orderDirection")
		}
		opts.Order = []map[string]any{{field: direction}}
	}

	assets, err := h.dx.ListAssets(r.Context(), opts)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to list filtered assets: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *handlers) searchRecords(w http.ResponseWriter, r *http.Request) {
	resource, err := required(r, "resource")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := optionalInt(r, "page")
	if err != nil {
		writeError(w, r, err)
		return
	}

	opts := &model.SearchRecordsOptions{
		Order: []map[string]any{{"createdAt": "desc"}},
		Limit: limit,
		Page:  page,
	}
	recs, err := h.dx.SearchRecords(r.Context(), resource, opts)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to search records for resource '%s': %w", resource, err))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func demoIssue(r *http.Request) (model.CreateIssueInput, error) {
	title, err := required(r, "title")
	if err != nil {
		return model.CreateIssueInput{}, err
	}
	q := r.URL.Query()
	return model.CreateIssueInput{
		Title:       title,
		IssueType:   model.String(q.Get("issueType")),
		IssueStatus: model.String(q.Get("issueStatus")),
		Group:       model.String(demoIssueGroup),
		Labels:      []string{"Test1", "Test2"},
		Properties:  map[string]any{"some-property": "value"},
	}, nil
}

func (h *handlers) createIssue(w http.ResponseWriter, r *http.Request) {
	in, err := demoIssue(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	in.RequestedBy = map[string]any{"uid": "123", "name": "John Doe"}

	issue, err := h.dx.CreateIssue(r.Context(), &in)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to create issue with title '%s': %w", in.Title, err))
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (h *handlers) upsertIssue(w http.ResponseWriter, r *http.Request) {
	in, err := demoIssue(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	up := &model.UpsertIssueInput{
		IdempotencyKey:   model.String(r.URL.Query().Get("idempotencyKey")),
		CreateIssueInput: in,
	}
	issue, err := h.dx.UpsertIssue(r.Context(), up)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to upsert issue with title '%s': %w", in.Title, err))
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

// sendWhatsApp sends a text message, or a template message when "template"
// is given with "language" and comma-separated "params".
func (h *handlers) sendWhatsApp(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		msg *model.Message
		err error
	)
	if name := q.Get("template"); name != "" {
		b := message.WhatsApp().Template(name).Language(q.Get("language"))
		if p := q.Get("params"); p != "" {
			b.BodyParameters(strings.Split(p, ",")...)
		}
		if v := q.Get("integrationId"); v != "" {
			b.IntegrationID(v)
		}
		if v := q.Get("from"); v != "" {
			b.From(v)
		}
		msg, err = b.Send(r.Context(), h.dx)
	} else {
		b := message.WhatsApp().Text(q.Get("body"))
		if v := q.Get("integrationId"); v != "" {
			b.IntegrationID(v)
		}
		if v := q.Get("from"); v != "" {
			b.From(v)
		}
		msg, err = b.Send(r.Context(), h.dx)
	}
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to send whatsapp message: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *handlers) sendEmail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	to, err := required(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	b := message.Email().To(to)
	if v := q.Get("subject"); v != "" {
		b.Subject(v)
	}
	if v := q.Get("html"); v != "" {
		b.HTMLBody(v)
	}
	if v := q.Get("text"); v != "" {
		b.PlainBody(v)
	}
	if v := q.Get("from"); v != "" {
		b.From(v)
	}
	if v := q.Get("integrationId"); v != "" {
		b.IntegrationID(v)
	}

	msg, err := b.Send(r.Context(), h.dx)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to send email: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, msg)
}
