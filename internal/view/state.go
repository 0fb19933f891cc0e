// internal/view/state.go

// Package view holds the page state machine every screen runs: a page
// enters Loading, its fetches fire, and it lands in Loaded or LoadError.
// A retry re-enters Loading for the same fetch sequence. Mutations never
// touch state directly — they re-run the load so the rendered list is
// always the latest GET response.
package view

import "github.com/basketbot/admin-console/internal/backend"

type Phase int

const (
	Loading Phase = iota
	Loaded
	LoadError
)

// List is the state behind one list-shaped page region.
type List[T any] struct {
	Phase Phase
	Items []T
	Err   string
}

func NewList[T any]() *List[T] {
	return &List[T]{Phase: Loading}
}

// FetchSucceeded records a 2xx response. shaped is false when the
// payload failed the shape check (not an array where one is expected);
// the prior items are kept and the failure is absorbed.
func (l *List[T]) FetchSucceeded(items []T, shaped bool) {
	l.Phase = Loaded
	l.Err = ""
	if shaped {
		l.Items = items
	}
}

// FetchFailed blocks the page with a mapped message and a retry.
func (l *List[T]) FetchFailed(msg string) {
	l.Phase = LoadError
	l.Err = msg
}

// Retry re-enters Loading; the caller re-runs the same fetch sequence.
func (l *List[T]) Retry() {
	l.Phase = Loading
	l.Err = ""
}

func (l *List[T]) Failed() bool { return l.Phase == LoadError }

// ApplyList drives a List from a backend list response.
func ApplyList[T any](l *List[T], res backend.Result[[]T]) {
	if !res.OK {
		l.FetchFailed(backend.UserFacing(res.Status, res.Err))
		return
	}
	l.FetchSucceeded(res.Data, res.HasData)
}

// Value is the state behind a single-object page region (dashboard,
// settings, reports).
type Value[T any] struct {
	Phase Phase
	Data  T
	Err   string
}

func NewValue[T any]() *Value[T] {
	return &Value[T]{Phase: Loading}
}

func (v *Value[T]) FetchSucceeded(data T, shaped bool) {
	v.Phase = Loaded
	v.Err = ""
	if shaped {
		v.Data = data
	}
}

func (v *Value[T]) FetchFailed(msg string) {
	v.Phase = LoadError
	v.Err = msg
}

func (v *Value[T]) Failed() bool { return v.Phase == LoadError }

func ApplyValue[T any](v *Value[T], res backend.Result[T]) {
	if !res.OK {
		v.FetchFailed(backend.UserFacing(res.Status, res.Err))
		return
	}
	v.FetchSucceeded(res.Data, res.HasData)
}

// Flash is the transient banner shown after a mutation. Mutations that
// fail leave the loaded data untouched; only the banner changes.
type Flash struct {
	OK   bool
	Text string
}

func FlashOK(text string) *Flash  { return &Flash{OK: true, Text: text} }
func FlashErr(text string) *Flash { return &Flash{Text: text} }

// MutationFlash folds a mutation envelope into a banner: success keeps
// the backend's message (or the fallback), failure maps status + detail.
func MutationFlash(r backend.Result[backend.ActionResult], fallback string) *Flash {
	if backend.Failed(r) {
		return FlashErr(backend.UserFacing(r.Status, backend.Detail(r)))
	}
	return FlashOK(backend.Message(r, fallback))
}
