package message

import (
	"strings"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/model"
)

// EmailBuilder builds an email. Recipients are addresses or
// {"email", "name"} objects.
type EmailBuilder struct {
	common[*EmailBuilder]
	from       *string
	to         []any
	cc         []any
	bcc        []any
	replyTo    *string
	subject    *string
	htmlBody   *string
	plainBody  *string
	inReplyTo  *string
	references []string
}

// Email starts an email message.
func Email() *EmailBuilder {
	b := &EmailBuilder{}
	b.self, b.p = b, b
	return b
}

func (b *EmailBuilder) From(from string) *EmailBuilder {
	b.from = &from
	return b
}

func (b *EmailBuilder) To(recipients ...any) *EmailBuilder {
	b.to = recipients
	return b
}

func (b *EmailBuilder) Cc(recipients ...any) *EmailBuilder {
	b.cc = recipients
	return b
}

func (b *EmailBuilder) Bcc(recipients ...any) *EmailBuilder {
	b.bcc = recipients
	return b
}

func (b *EmailBuilder) ReplyTo(addr string) *EmailBuilder {
	b.replyTo = &addr
	return b
}

func (b *EmailBuilder) Subject(subject string) *EmailBuilder {
	b.subject = &subject
	return b
}

func (b *EmailBuilder) HTMLBody(html string) *EmailBuilder {
	b.htmlBody = &html
	return b
}

func (b *EmailBuilder) PlainBody(text string) *EmailBuilder {
	b.plainBody = &text
	return b
}

// InReplyTo and References thread the email into an existing conversation.
func (b *EmailBuilder) InReplyTo(messageID string) *EmailBuilder {
	b.inReplyTo = &messageID
	return b
}

func (b *EmailBuilder) References(messageIDs ...string) *EmailBuilder {
	b.references = messageIDs
	return b
}

func (b *EmailBuilder) validate() error {
	if blank(b.htmlBody) && blank(b.plainBody) {
		return dashxerr.Validation(opBuild, "Email must have at least one of htmlBody or plainBody")
	}
	return nil
}

func (b *EmailBuilder) content() map[string]any {
	c := map[string]any{}
	to := b.to
	if to == nil {
		to = []any{}
	}
	c["to"] = to

	putString(c, "from", b.from)
	if b.cc != nil {
		c["cc"] = b.cc
	}
	if b.bcc != nil {
		c["bcc"] = b.bcc
	}
	putString(c, "replyTo", b.replyTo)
	putString(c, "subject", b.subject)
	putString(c, "htmlBody", b.htmlBody)
	putString(c, "plainBody", b.plainBody)
	putString(c, "inReplyTo", b.inReplyTo)
	if b.references != nil {
		c["references"] = b.references
	}
	return c
}

func (*EmailBuilder) subkind() model.TemplateSubkind { return model.TemplateSubkindEmail }

func putString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
