// Package servers holds the HTTP contract of the checkout API: the OpenAPI
// document, the request and response types and the echo routing glue.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for SessionStatus.
const (
	SessionStatusIdle       SessionStatus = "Idle"
	SessionStatusValidating SessionStatus = "Validating"
	SessionStatusRejected   SessionStatus = "Rejected"
	SessionStatusAccepted   SessionStatus = "Accepted"
)

// Defines values for FormFieldInputType.
const (
	FormFieldInputTypeText     FormFieldInputType = "text"
	FormFieldInputTypeEmail    FormFieldInputType = "email"
	FormFieldInputTypeTextarea FormFieldInputType = "textarea"
	FormFieldInputTypePassword FormFieldInputType = "password"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FormField defines model for FormField.
type FormField struct {
	Error     *string            `json:"error,omitempty"`
	InputType FormFieldInputType `json:"inputType"`
	Label     string             `json:"label"`
	MaxLength *int               `json:"maxLength,omitempty"`
	Name      string             `json:"name"`
	Value     string             `json:"value"`
}

// FormFieldInputType defines model for FormField.InputType.
type FormFieldInputType string

// Session defines model for Session.
type Session struct {
	Errors map[string]string  `json:"errors"`
	Fields []FormField        `json:"fields"`
	Id     openapi_types.UUID `json:"id"`
	Status SessionStatus      `json:"status"`
}

// SessionStatus defines model for Session.Status.
type SessionStatus string

// SetFieldRequest defines model for SetFieldRequest.
type SetFieldRequest struct {
	Value string `json:"value"`
}

// SubmissionStats defines model for SubmissionStats.
type SubmissionStats struct {
	Accepted        int64            `json:"accepted"`
	FailuresByField map[string]int64 `json:"failuresByField"`
	Rejected        int64            `json:"rejected"`
	Total           int64            `json:"total"`
}

// SubmitResult defines model for SubmitResult.
type SubmitResult struct {
	Accepted bool               `json:"accepted"`
	Errors   *map[string]string `json:"errors,omitempty"`
	Message  *string            `json:"message,omitempty"`
	Redirect *string            `json:"redirect,omitempty"`
}

// SessionId defines model for SessionId.
type SessionId = openapi_types.UUID

// SetFieldJSONRequestBody defines body for SetField for application/json ContentType.
type SetFieldJSONRequestBody = SetFieldRequest
