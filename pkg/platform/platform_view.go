package platform

import (
	stderrors "errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/uitext/pkg/errors"
)

// EventHandlers are the application callbacks of one mounted text view.
// Each kind has exactly one listener; nil slots ignore the event.
type EventHandlers struct {
	OnMenuAction func(MenuActionEvent)
	OnTextLayout func(TextLayoutEvent)
}

// mountedTextView is the registry's record of one native view instance.
type mountedTextView struct {
	target   int32
	props    NativeProps
	handlers EventHandlers
}

// TextViewRegistry routes native events to the handlers of the view that
// emitted them, keyed by the native target.
//
// Native events arrive on whatever thread the platform delivers them, in no
// particular order relative to composition passes, so the registry is safe
// for concurrent use. Handlers run synchronously on the delivering goroutine.
type TextViewRegistry struct {
	views  map[int32]*mountedTextView
	nextID atomic.Int32
	mu     sync.RWMutex
}

var (
	textViewRegistry     *TextViewRegistry
	textViewRegistryOnce sync.Once
)

// GetTextViewRegistry returns the process-wide registry.
func GetTextViewRegistry() *TextViewRegistry {
	textViewRegistryOnce.Do(func() {
		textViewRegistry = NewTextViewRegistry()
	})
	return textViewRegistry
}

// NewTextViewRegistry creates an empty registry.
func NewTextViewRegistry() *TextViewRegistry {
	return &TextViewRegistry{
		views: make(map[int32]*mountedTextView),
	}
}

// Mount records a new native view and returns its target.
func (r *TextViewRegistry) Mount(props NativeProps, handlers EventHandlers) int32 {
	target := r.nextID.Add(1)
	r.mu.Lock()
	r.views[target] = &mountedTextView{target: target, props: props, handlers: handlers}
	r.mu.Unlock()
	return target
}

// MountWithTarget records a view under a target assigned by the native side.
// An existing view with the same target is replaced.
func (r *TextViewRegistry) MountWithTarget(target int32, props NativeProps, handlers EventHandlers) {
	r.mu.Lock()
	r.views[target] = &mountedTextView{target: target, props: props, handlers: handlers}
	r.mu.Unlock()
}

// Update replaces the props and handlers of a mounted view.
func (r *TextViewRegistry) Update(target int32, props NativeProps, handlers EventHandlers) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	view, ok := r.views[target]
	if !ok {
		return fmt.Errorf("%w: %d", ErrTargetNotFound, target)
	}
	view.props = props
	view.handlers = handlers
	return nil
}

// Unmount forgets a view. Later events for its target are rejected.
func (r *TextViewRegistry) Unmount(target int32) {
	r.mu.Lock()
	delete(r.views, target)
	r.mu.Unlock()
}

// Props returns the last props recorded for target.
func (r *TextViewRegistry) Props(target int32) (NativeProps, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[target]
	if !ok {
		return NativeProps{}, false
	}
	return view.props, true
}

// Len returns the number of mounted views.
func (r *TextViewRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// HandleEvent decodes a native event and invokes the owning view's handler.
// Failures are reported to the global error handler and returned.
func (r *TextViewRegistry) HandleEvent(kind EventKind, data []byte) error {
	target, event, err := DecodeEvent(kind, data)
	if err != nil {
		errKind := errors.KindParsing
		if !isParseFailure(err) {
			errKind = errors.KindPlatform
		}
		errors.Report(&errors.BridgeError{
			Op:      "platform.HandleEvent",
			Kind:    errKind,
			Channel: string(kind),
			Err:     err,
		})
		return err
	}

	r.mu.RLock()
	view, ok := r.views[target]
	var handlers EventHandlers
	if ok {
		handlers = view.handlers
	}
	r.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %d", ErrTargetNotFound, target)
		errors.Report(&errors.BridgeError{
			Op:      "platform.HandleEvent",
			Kind:    errors.KindPlatform,
			Channel: string(kind),
			Err:     err,
		})
		return err
	}

	Deliver(handlers, event)
	return nil
}

// Deliver invokes the handler slot matching event. A panicking handler is
// recovered and reported.
func Deliver(handlers EventHandlers, event Event) {
	switch ev := event.(type) {
	case MenuActionEvent:
		if handlers.OnMenuAction != nil {
			defer errors.Recover("platform.deliverMenuAction")
			handlers.OnMenuAction(ev)
		}
	case TextLayoutEvent:
		if handlers.OnTextLayout != nil {
			defer errors.Recover("platform.deliverTextLayout")
			handlers.OnTextLayout(ev)
		}
	}
}

// HandleEvent routes a native event through the process-wide registry.
func HandleEvent(kind EventKind, data []byte) error {
	return GetTextViewRegistry().HandleEvent(kind, data)
}

func isParseFailure(err error) bool {
	var parseErr *errors.ParseError
	if stderrors.As(err, &parseErr) {
		return true
	}
	return stderrors.Is(err, ErrInvalidPayload)
}
