package graphql

import "strings"

// Projection is an ordered list of fields rendered as a selection set.
type Projection []string

// Fields returns a projection of the given field names. Nested selections
// may be passed verbatim, e.g. "language { code }".
func Fields(names ...string) Projection {
	return Projection(names)
}

// With returns a copy of p extended with names.
func (p Projection) With(names ...string) Projection {
	out := make(Projection, 0, len(p)+len(names))
	out = append(out, p...)
	return append(out, names...)
}

// String renders p as "{ a b c }".
func (p Projection) String() string {
	if len(p) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(p, " ") + " }"
}

var (
	AccountProjection = Fields(
		"id", "environmentId", "email", "phone", "fullName", "name",
		"firstName", "lastName", "avatar", "timeZone", "uid", "anonymousUid",
		"createdAt", "updatedAt",
	)

	AssetProjection = Fields(
		"id", "workspaceId", "resourceId", "attributeId", "storageProviderId",
		"uploaderId", "data", "uploadStatus", "processingStatus", "createdAt",
		"updatedAt", "name", "size", "mimeType", "uploadStatusReason",
		"processingStatusReason", "url", "staticVideoUrls", "staticAudioUrl",
	)

	TrackEventProjection = Fields("success")

	IssueProjection = Fields(
		"id", "workspaceId", "issueStatusId", "createdById", "environmentId",
		"spaceId", "parentId", "assigneeId", "groupId", "title", "description",
		"position", "properties", "createdAt", "updatedAt", "issueTypeId",
		"dueAt", "number", "idempotencyKey", "priority",
	)

	MessageProjection = Fields(
		"id", "integrationId", "broadcastId", "conversationId", "senderId",
		"channel", "subChannel", "renderedContent", "data", "attachments",
		"createdAt", "updatedAt",
	)
)
