package model

import "time"

// IdentifyAccountInput is the input of identifyAccount.
type IdentifyAccountInput struct {
	UID          *string `json:"uid,omitempty"`
	AnonymousUID *string `json:"anonymousUid,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Name         *string `json:"name,omitempty"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
}

// TrackEventInput is the input of trackEvent. AccountUID and
// AccountAnonymousUID are always serialized; exactly one of them is non-nil.
type TrackEventInput struct {
	Event               string         `json:"event"`
	AccountUID          *string        `json:"accountUid"`
	AccountAnonymousUID *string        `json:"accountAnonymousUid"`
	Data                map[string]any `json:"data,omitempty"`
}

// SearchRecordsOptions narrows a searchRecords call. The zero value returns
// the first page with server defaults.
type SearchRecordsOptions struct {
	Filter   map[string]any   `json:"filter,omitempty"`
	Order    []map[string]any `json:"order,omitempty"`
	Limit    *int             `json:"limit,omitempty"`
	Page     *int             `json:"page,omitempty"`
	Preview  *bool            `json:"preview,omitempty"`
	Language *string          `json:"language,omitempty"`
	Fields   []map[string]any `json:"fields,omitempty"`
	Include  []map[string]any `json:"include,omitempty"`
	Exclude  []map[string]any `json:"exclude,omitempty"`
}

// SearchRecordsInput is the input of searchRecords.
type SearchRecordsInput struct {
	Resource string `json:"resource"`
	SearchRecordsOptions
}

// Input combines resource with o. A nil o yields an input with only the
// resource set.
func (o *SearchRecordsOptions) Input(resource string) SearchRecordsInput {
	in := SearchRecordsInput{Resource: resource}
	if o != nil {
		in.SearchRecordsOptions = *o
	}
	return in
}

// ListAssetsOptions are the variables of assetsList.
type ListAssetsOptions struct {
	Filter map[string]any   `json:"filter,omitempty"`
	Order  []map[string]any `json:"order,omitempty"`
	Limit  *int             `json:"limit,omitempty"`
	Page   *int             `json:"page,omitempty"`
}

// CreateIssueInput is the input of createIssue. Group, IssueType and
// IssueStatus accept either a name or an id from the workspace.
type CreateIssueInput struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	IssueType   *string        `json:"issueType,omitempty"`
	IssueStatus *string        `json:"issueStatus,omitempty"`
	Group       *string        `json:"group,omitempty"`
	Assignee    *string        `json:"assignee,omitempty"`
	Priority    *string        `json:"priority,omitempty"`
	Labels      []string       `json:"labels,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	RequestedBy map[string]any `json:"requestedBy,omitempty"`
	DueAt       *time.Time     `json:"dueAt,omitempty"`
}

// UpsertIssueInput is the input of upsertIssue. When IdempotencyKey matches an
// existing issue it is updated; otherwise a new issue is created.
type UpsertIssueInput struct {
	ID             *string `json:"id,omitempty"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
	CreateIssueInput
}

// SendMessageInput is the input of sendMessage.
type SendMessageInput struct {
	ConversationID  *string         `json:"conversationId,omitempty"`
	IntegrationID   *string         `json:"integrationId,omitempty"`
	TemplateID      *string         `json:"templateId,omitempty"`
	TemplateSubkind TemplateSubkind `json:"templateSubkind"`
	Content         map[string]any  `json:"content"`
	Data            map[string]any  `json:"data,omitempty"`
}

// PrepareAssetInput is the input of prepareAsset, which reserves an asset row
// and returns a signed upload URL.
type PrepareAssetInput struct {
	Name       string  `json:"name"`
	MimeType   string  `json:"mimeType"`
	Size       int64   `json:"size"`
	Resource   *string `json:"resource,omitempty"`
	Attribute  *string `json:"attribute,omitempty"`
	UploaderID *string `json:"uploaderId,omitempty"`
}
