// Package message builds sendMessage inputs with a fluent API.
//
//	msg, err := message.WhatsApp().
//		Template("order_shipped").
//		Language("en_US").
//		BodyParameters("Jo", "#1042").
//		IntegrationID(integrationID).
//		Send(ctx, sdk.Default())
//
//	_, err = message.Email().
//		To("jo@example.com").
//		Subject("Welcome").
//		HTMLBody("<p>Hi Jo</p>").
//		Send(ctx, sdk.Default())
//
// Build validates the builder and returns the model.SendMessageInput without
// sending it. Validation failures are dashxerr.ErrValidation.
package message
