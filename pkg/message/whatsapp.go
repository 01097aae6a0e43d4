package message

import (
	"fmt"
	"strings"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/model"
)

// MaxButtons is the most reply buttons WhatsApp allows on one message.
const MaxButtons = 3

const opBuild = "message.build"

// WhatsAppBuilder selects the kind of WhatsApp message.
type WhatsAppBuilder struct{}

// WhatsApp starts a WhatsApp message.
func WhatsApp() WhatsAppBuilder { return WhatsAppBuilder{} }

// Text starts a plain text message.
func (WhatsAppBuilder) Text(body string) *TextBuilder {
	b := &TextBuilder{body: body}
	b.self, b.p = b, b
	return b
}

// Template starts a pre-approved template message.
func (WhatsAppBuilder) Template(name string) *TemplateBuilder {
	b := &TemplateBuilder{name: name}
	b.self, b.p = b, b
	return b
}

// Interactive starts a message with reply buttons.
func (WhatsAppBuilder) Interactive() *InteractiveBuilder {
	b := &InteractiveBuilder{}
	b.self, b.p = b, b
	return b
}

type TextBuilder struct {
	common[*TextBuilder]
	body string
	from *string
}

func (b *TextBuilder) From(from string) *TextBuilder {
	b.from = &from
	return b
}

func (b *TextBuilder) validate() error {
	if strings.TrimSpace(b.body) == "" {
		return dashxerr.Validation(opBuild, "WhatsApp text message body cannot be null or empty")
	}
	return nil
}

func (b *TextBuilder) content() map[string]any {
	c := map[string]any{
		"type": "text",
		"text": map[string]any{"body": b.body},
	}
	if b.from != nil {
		c["from"] = *b.from
	}
	return c
}

func (*TextBuilder) subkind() model.TemplateSubkind { return model.TemplateSubkindWhatsApp }

type TemplateBuilder struct {
	common[*TemplateBuilder]
	name             string
	from             *string
	language         string
	headerParameters []string
	bodyParameters   []string
}

func (b *TemplateBuilder) From(from string) *TemplateBuilder {
	b.from = &from
	return b
}

// Language sets the template language code, e.g. "en_US".
func (b *TemplateBuilder) Language(code string) *TemplateBuilder {
	b.language = code
	return b
}

func (b *TemplateBuilder) HeaderParameters(values ...string) *TemplateBuilder {
	b.headerParameters = values
	return b
}

func (b *TemplateBuilder) BodyParameters(values ...string) *TemplateBuilder {
	b.bodyParameters = values
	return b
}

func (b *TemplateBuilder) validate() error {
	if strings.TrimSpace(b.name) == "" {
		return dashxerr.Validation(opBuild, "WhatsApp template name cannot be null or empty")
	}
	if strings.TrimSpace(b.language) == "" {
		return dashxerr.Validation(opBuild, "WhatsApp template language cannot be null or empty")
	}
	return nil
}

func (b *TemplateBuilder) content() map[string]any {
	var components []map[string]any
	if len(b.headerParameters) > 0 {
		components = append(components, map[string]any{
			"type":       "header",
			"parameters": textParameters(b.headerParameters),
		})
	}
	if len(b.bodyParameters) > 0 {
		components = append(components, map[string]any{
			"type":       "body",
			"parameters": textParameters(b.bodyParameters),
		})
	}

	tm := map[string]any{
		"name":     b.name,
		"language": map[string]any{"code": b.language},
	}
	if len(components) > 0 {
		tm["components"] = components
	}

	c := map[string]any{
		"type":             "template",
		"template_message": tm,
	}
	if b.from != nil {
		c["from"] = *b.from
	}
	return c
}

func (*TemplateBuilder) subkind() model.TemplateSubkind { return model.TemplateSubkindWhatsApp }

func textParameters(values []string) []map[string]any {
	out := make([]map[string]any, 0, len(values))
	for _, v := range values {
		out = append(out, map[string]any{"type": "text", "text": v})
	}
	return out
}

type InteractiveBuilder struct {
	common[*InteractiveBuilder]
	from    *string
	body    string
	buttons []map[string]any
}

func (b *InteractiveBuilder) From(from string) *InteractiveBuilder {
	b.from = &from
	return b
}

func (b *InteractiveBuilder) Body(body string) *InteractiveBuilder {
	b.body = body
	return b
}

// Button appends a reply button. At most MaxButtons are accepted by Build.
func (b *InteractiveBuilder) Button(id, title string) *InteractiveBuilder {
	b.buttons = append(b.buttons, map[string]any{
		"type":  "reply",
		"reply": map[string]any{"id": id, "title": title},
	})
	return b
}

func (b *InteractiveBuilder) validate() error {
	if strings.TrimSpace(b.body) == "" {
		return dashxerr.Validation(opBuild, "WhatsApp interactive message body cannot be null or empty")
	}
	if len(b.buttons) == 0 {
		return dashxerr.Validation(opBuild, "WhatsApp interactive message must have at least one button")
	}
	if len(b.buttons) > MaxButtons {
		return dashxerr.Validation(opBuild, fmt.Sprintf(
			"WhatsApp interactive message cannot have more than %d buttons, got %d", MaxButtons, len(b.buttons)))
	}
	return nil
}

func (b *InteractiveBuilder) content() map[string]any {
	buttons := make([]map[string]any, len(b.buttons))
	copy(buttons, b.buttons)

	c := map[string]any{
		"type": "interactive",
		"interactive": map[string]any{
			"type":   "button",
			"body":   map[string]any{"text": b.body},
			"action": map[string]any{"buttons": buttons},
		},
	}
	if b.from != nil {
		c["from"] = *b.from
	}
	return c
}

func (*InteractiveBuilder) subkind() model.TemplateSubkind { return model.TemplateSubkindWhatsApp }
