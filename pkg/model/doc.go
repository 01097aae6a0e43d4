// Package model defines the DashX schema types exchanged with the GraphQL API.
//
// Output types (Account, Asset, Issue, Message, TrackEventResponse) mirror the
// projections requested by the SDK. Input types are sent as the "input"
// variable of the corresponding mutation or query; optional fields are
// pointers and are omitted when nil.
//
// Use String, Int and Bool to fill optional fields inline:
//
//	in := model.CreateIssueInput{
//		Title:     "Checkout fails on Safari",
//		IssueType: model.String("Bug"),
//	}
package model
