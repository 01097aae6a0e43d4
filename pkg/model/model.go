package model

import "time"

// Account is the result of identifyAccount.
type Account struct {
	ID            string     `json:"id"`
	EnvironmentID string     `json:"environmentId,omitempty"`
	UID           *string    `json:"uid"`
	AnonymousUID  *string    `json:"anonymousUid"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	FullName      *string    `json:"fullName"`
	Name          *string    `json:"name"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	Avatar        *string    `json:"avatar"`
	TimeZone      *string    `json:"timeZone"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// TrackEventResponse is the result of trackEvent.
type TrackEventResponse struct {
	Success bool `json:"success"`
}

// AssetUploadStatus reports whether an asset's bytes have reached storage.
type AssetUploadStatus string

const (
	AssetUploadStatusPending  AssetUploadStatus = "PENDING"
	AssetUploadStatusUploaded AssetUploadStatus = "UPLOADED"
	AssetUploadStatusFailed   AssetUploadStatus = "FAILED"
)

// AssetProcessingStatus reports post-upload processing (thumbnails, transcodes).
type AssetProcessingStatus string

const (
	AssetProcessingStatusPending   AssetProcessingStatus = "PENDING"
	AssetProcessingStatusProcessed AssetProcessingStatus = "PROCESSED"
	AssetProcessingStatusFailed    AssetProcessingStatus = "FAILED"
)

// Asset is a stored file (image, video, document) attached to a resource.
type Asset struct {
	ID                     string                `json:"id"`
	WorkspaceID            *string               `json:"workspaceId"`
	ResourceID             *string               `json:"resourceId"`
	AttributeID            *string               `json:"attributeId"`
	StorageProviderID      *string               `json:"storageProviderId"`
	UploaderID             *string               `json:"uploaderId"`
	Name                   *string               `json:"name"`
	Size                   *int64                `json:"size"`
	MimeType               *string               `json:"mimeType"`
	URL                    *string               `json:"url"`
	StaticVideoURLs        []string              `json:"staticVideoUrls,omitempty"`
	StaticAudioURL         *string               `json:"staticAudioUrl"`
	Data                   map[string]any        `json:"data,omitempty"`
	UploadStatus           AssetUploadStatus     `json:"uploadStatus,omitempty"`
	UploadStatusReason     *string               `json:"uploadStatusReason"`
	ProcessingStatus       AssetProcessingStatus `json:"processingStatus,omitempty"`
	ProcessingStatusReason *string               `json:"processingStatusReason"`
	CreatedAt              *time.Time            `json:"createdAt,omitempty"`
	UpdatedAt              *time.Time            `json:"updatedAt,omitempty"`
}

// UploadURL returns the signed upload URL carried in Data after prepareAsset,
// or "" when the asset has none.
func (a *Asset) UploadURL() string {
	if a == nil || a.Data == nil {
		return ""
	}
	upload, ok := a.Data["upload"].(map[string]any)
	if !ok {
		return ""
	}
	u, _ := upload["url"].(string)
	return u
}

// Issue is a ticket/task/bug tracked in a DashX workspace.
type Issue struct {
	ID             string         `json:"id"`
	WorkspaceID    *string        `json:"workspaceId"`
	IssueStatusID  *string        `json:"issueStatusId"`
	IssueTypeID    *string        `json:"issueTypeId"`
	CreatedByID    *string        `json:"createdById"`
	EnvironmentID  *string        `json:"environmentId"`
	SpaceID        *string        `json:"spaceId"`
	ParentID       *string        `json:"parentId"`
	AssigneeID     *string        `json:"assigneeId"`
	GroupID        *string        `json:"groupId"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	Position       *float64       `json:"position"`
	Properties     map[string]any `json:"properties,omitempty"`
	Number         *int64         `json:"number"`
	IdempotencyKey *string        `json:"idempotencyKey"`
	Priority       *string        `json:"priority"`
	DueAt          *time.Time     `json:"dueAt,omitempty"`
	CreatedAt      *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// TemplateSubkind selects the delivery channel of a message.
type TemplateSubkind string

const (
	TemplateSubkindEmail    TemplateSubkind = "EMAIL"
	TemplateSubkindWhatsApp TemplateSubkind = "WHATSAPP"
)

// Message is the result of sendMessage.
type Message struct {
	ID              string         `json:"id"`
	IntegrationID   *string        `json:"integrationId"`
	BroadcastID     *string        `json:"broadcastId"`
	ConversationID  *string        `json:"conversationId"`
	SenderID        *string        `json:"senderId"`
	Channel         *string        `json:"channel"`
	SubChannel      *string        `json:"subChannel"`
	RenderedContent map[string]any `json:"renderedContent,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	Attachments     []any          `json:"attachments,omitempty"`
	CreatedAt       *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time     `json:"updatedAt,omitempty"`
}

// String returns a pointer to s, or nil when s is empty. It is the usual way
// to fill optional input fields.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Deref returns *s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
