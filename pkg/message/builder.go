package message

import (
	"context"

	"github.com/dashxhq/dashx-go/pkg/model"
)

// Sender delivers a built message. *sdk.Client implements it.
type Sender interface {
	SendMessage(ctx context.Context, in *model.SendMessageInput) (*model.Message, error)
}

// payload is what each concrete builder contributes.
type payload interface {
	validate() error
	content() map[string]any
	subkind() model.TemplateSubkind
}

// common holds the fields shared by every builder. T is the concrete builder,
// returned by the setters so calls chain without losing its methods. self and
// p point at the same builder.
type common[T any] struct {
	self T
	p    payload

	conversationID *string
	integrationID  *string
	templateID     *string
	data           map[string]any
}

func (c *common[T]) ConversationID(id string) T {
	c.conversationID = &id
	return c.self
}

func (c *common[T]) IntegrationID(id string) T {
	c.integrationID = &id
	return c.self
}

func (c *common[T]) TemplateID(id string) T {
	c.templateID = &id
	return c.self
}

func (c *common[T]) Data(data map[string]any) T {
	c.data = data
	return c.self
}

// Build validates the builder and returns the input for sendMessage.
func (c *common[T]) Build() (*model.SendMessageInput, error) {
	if err := c.p.validate(); err != nil {
		return nil, err
	}
	return &model.SendMessageInput{
		ConversationID:  c.conversationID,
		IntegrationID:   c.integrationID,
		TemplateID:      c.templateID,
		TemplateSubkind: c.p.subkind(),
		Content:         c.p.content(),
		Data:            c.data,
	}, nil
}

// Send builds the message and delivers it through s.
func (c *common[T]) Send(ctx context.Context, s Sender) (*model.Message, error) {
	in, err := c.Build()
	if err != nil {
		return nil, err
	}
	return s.SendMessage(ctx, in)
}
