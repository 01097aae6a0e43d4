package message

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/model"
)

type senderFunc func(ctx context.Context, in *model.SendMessageInput) (*model.Message, error)

func (f senderFunc) SendMessage(ctx context.Context, in *model.SendMessageInput) (*model.Message, error) {
	return f(ctx, in)
}

func TestText_Build(t *testing.T) {
	in, err := WhatsApp().Text("Hello").From("+15550001").ConversationID("conv-1").IntegrationID("int-1").Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{
		"type": "text",
		"text": map[string]any{"body": "Hello"},
		"from": "+15550001",
	}
	if !reflect.DeepEqual(in.Content, want) {
		t.Fatalf("content = %#v", in.Content)
	}
	if in.TemplateSubkind != model.TemplateSubkindWhatsApp {
		t.Fatalf("subkind = %s", in.TemplateSubkind)
	}
	if model.Deref(in.ConversationID) != "conv-1" || model.Deref(in.IntegrationID) != "int-1" || in.TemplateID != nil {
		t.Fatalf("common fields = %+v", in)
	}
}

func TestText_OmitsUnsetFrom(t *testing.T) {
	in, err := WhatsApp().Text("Hello").Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := in.Content["from"]; ok {
		t.Fatal("from must be omitted when unset")
	}
}

func TestTemplate_Build(t *testing.T) {
	in, err := WhatsApp().Template("order_shipped").
		Language("en_US").
		HeaderParameters("ACME").
		BodyParameters("Jo", "#1042").
		TemplateID("tpl-1").
		Data(map[string]any{"orderId": 1042}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{
		"type": "template",
		"template_message": map[string]any{
			"name":     "order_shipped",
			"language": map[string]any{"code": "en_US"},
			"components": []map[string]any{
				{"type": "header", "parameters": []map[string]any{{"type": "text", "text": "ACME"}}},
				{"type": "body", "parameters": []map[string]any{
					{"type": "text", "text": "Jo"},
					{"type": "text", "text": "#1042"},
				}},
			},
		},
	}
	if !reflect.DeepEqual(in.Content, want) {
		t.Fatalf("content = %#v", in.Content)
	}
	if model.Deref(in.TemplateID) != "tpl-1" || in.Data["orderId"] != 1042 {
		t.Fatalf("common fields = %+v", in)
	}
}

func TestTemplate_NoComponents(t *testing.T) {
	in, err := WhatsApp().Template("hello_world").Language("en").Build()
	if err != nil {
		t.Fatal(err)
	}
	tm := in.Content["template_message"].(map[string]any)
	if _, ok := tm["components"]; ok {
		t.Fatal("components must be omitted without parameters")
	}
}

func TestInteractive_Build(t *testing.T) {
	in, err := WhatsApp().Interactive().Body("Pick one").Button("yes", "Yes").Button("no", "No").Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{
		"type": "interactive",
		"interactive": map[string]any{
			"type": "button",
			"body": map[string]any{"text": "Pick one"},
			"action": map[string]any{"buttons": []map[string]any{
				{"type": "reply", "reply": map[string]any{"id": "yes", "title": "Yes"}},
				{"type": "reply", "reply": map[string]any{"id": "no", "title": "No"}},
			}},
		},
	}
	if !reflect.DeepEqual(in.Content, want) {
		t.Fatalf("content = %#v", in.Content)
	}
}

func TestEmail_Build(t *testing.T) {
	in, err := Email().
		From("support@example.com").
		To("jo@example.com", map[string]any{"email": "al@example.com", "name": "Al"}).
		Subject("Welcome").
		HTMLBody("<p>Hi</p>").
		References("<a@mail>").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if in.TemplateSubkind != model.TemplateSubkindEmail {
		t.Fatalf("subkind = %s", in.TemplateSubkind)
	}
	for _, key := range []string{"cc", "bcc", "replyTo", "plainBody", "inReplyTo"} {
		if _, ok := in.Content[key]; ok {
			t.Errorf("%s must be omitted when unset", key)
		}
	}
	if in.Content["subject"] != "Welcome" || in.Content["htmlBody"] != "<p>Hi</p>" || in.Content["from"] != "support@example.com" {
		t.Fatalf("content = %#v", in.Content)
	}
	if to := in.Content["to"].([]any); len(to) != 2 {
		t.Fatalf("to = %#v", to)
	}
}

func TestEmail_DefaultsTo(t *testing.T) {
	in, err := Email().PlainBody("hi").Build()
	if err != nil {
		t.Fatal(err)
	}
	to, ok := in.Content["to"].([]any)
	if !ok || to == nil || len(to) != 0 {
		t.Fatalf("to must default to an empty list, got %#v", in.Content["to"])
	}
}

func TestBuild_Validation(t *testing.T) {
	tooMany := WhatsApp().Interactive().Body("b")
	for i := 0; i < MaxButtons+1; i++ {
		tooMany.Button("id", "title")
	}

	tests := []struct {
		name  string
		build func() (*model.SendMessageInput, error)
		want  string
	}{
		{"text blank", WhatsApp().Text(" ").Build, "WhatsApp text message body cannot be null or empty"},
		{"template name", WhatsApp().Template("").Language("en").Build, "WhatsApp template name cannot be null or empty"},
		{"template language", WhatsApp().Template("t").Build, "WhatsApp template language cannot be null or empty"},
		{"interactive body", WhatsApp().Interactive().Button("a", "A").Build, "WhatsApp interactive message body cannot be null or empty"},
		{"interactive no buttons", WhatsApp().Interactive().Body("b").Build, "must have at least one button"},
		{"interactive too many", tooMany.Build, "cannot have more than 3 buttons, got 4"},
		{"email no body", Email().To("a@b.c").HTMLBody("  ").Build, "Email must have at least one of htmlBody or plainBody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if !errors.Is(err, dashxerr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("message %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSend(t *testing.T) {
	var got *model.SendMessageInput
	s := senderFunc(func(_ context.Context, in *model.SendMessageInput) (*model.Message, error) {
		got = in
		return &model.Message{ID: "m-1"}, nil
	})

	msg, err := WhatsApp().Text("hi").Send(context.Background(), s)
	if err != nil || msg.ID != "m-1" {
		t.Fatalf("Send: %+v %v", msg, err)
	}
	if got == nil || got.Content["type"] != "text" {
		t.Fatalf("sender received %+v", got)
	}
}

func TestSend_ValidationSkipsSender(t *testing.T) {
	called := false
	s := senderFunc(func(context.Context, *model.SendMessageInput) (*model.Message, error) {
		called = true
		return nil, nil
	})

	if _, err := Email().Send(context.Background(), s); !errors.Is(err, dashxerr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Fatal("sender must not be called for an invalid message")
	}
}
