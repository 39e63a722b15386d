// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package screen holds the state shapes shared by the client screens: the
// dialog overlay and the polymorphic view state.
//
// Every screen package (twofactor, movetoorg, attachments) builds its
// view-model on internal/viewmodel and keeps its state JSON encodable, so
// both types here encode every variant in a single struct with a Kind tag.
package screen

// DialogKind discriminates DialogState.
type DialogKind string

const (
	DialogError   DialogKind = "error"
	DialogLoading DialogKind = "loading"
)

// DialogState is the overlay shown on top of a screen. A nil *DialogState
// means no dialog.
type DialogState struct {
	Kind DialogKind `json:"kind"`

	// Title is optional and only used by error dialogs.
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// ErrorDialog returns an error dialog.
func ErrorDialog(title, message string) *DialogState {
	return &DialogState{Kind: DialogError, Title: title, Message: message}
}

// LoadingDialog returns a loading dialog.
func LoadingDialog(message string) *DialogState {
	return &DialogState{Kind: DialogLoading, Message: message}
}

// ViewKind discriminates ViewState.
type ViewKind string

const (
	ViewLoading ViewKind = "loading"
	ViewError   ViewKind = "error"
	ViewEmpty   ViewKind = "empty"
	ViewContent ViewKind = "content"
)

// ViewState is what a screen renders. Exactly one variant is active:
//   - Loading and Empty carry nothing;
//   - Error carries Message and, when known, the last content as stale data;
//   - Content carries Content.
type ViewState[C any] struct {
	Kind    ViewKind `json:"kind"`
	Message string   `json:"message,omitempty"`
	Content *C       `json:"content,omitempty"`
}

// LoadingView returns the Loading variant.
func LoadingView[C any]() ViewState[C] {
	return ViewState[C]{Kind: ViewLoading}
}

// EmptyView returns the Empty variant.
func EmptyView[C any]() ViewState[C] {
	return ViewState[C]{Kind: ViewEmpty}
}

// ErrorView returns the Error variant. stale may be nil.
func ErrorView[C any](message string, stale *C) ViewState[C] {
	return ViewState[C]{Kind: ViewError, Message: message, Content: stale}
}

// ContentView returns the Content variant.
func ContentView[C any](content C) ViewState[C] {
	return ViewState[C]{Kind: ViewContent, Content: &content}
}

// Current returns the content of the Content and Error variants.
func (v ViewState[C]) Current() *C {
	if v.Kind == ViewContent || v.Kind == ViewError {
		return v.Content
	}
	return nil
}
