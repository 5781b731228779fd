package event

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx/brave"
	"github.com/go-leo/gox/syncx/chanx"
)

// maxBackoff caps the number of yields between two failed listener updates.
const maxBackoff = 16

type Bus interface {
	// On adds a Listener to the Event bus.
	On(e Event, lis Listener) error

	// Prepend adds the Listener to the beginning of the listeners.
	Prepend(e Event, lis Listener) error

	// Once adds a one-time Listener to the Event bus.
	Once(e Event, lis Listener) error

	// PrependOnce adds a one-time Listener to the beginning of the one-time listeners.
	PrependOnce(e Event, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the specified Event,
	// in the order they were registered. One-time listeners run after the others and are
	// removed once they have been called.
	Emit(e Event) error

	// AsyncEmit asynchronously calls each of the listeners registered for the specified Event.
	// Listener errors, panics included, are delivered on the returned channel, which is closed
	// once every listener has returned.
	AsyncEmit(e Event) <-chan error

	// Off removes the specified Listener from the listeners.
	Off(e Event, lis Listener) error

	// OffAll removes all listeners for the specified Event.
	OffAll(e Event) error

	// Close bus gracefully.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	listenerMap     sync.Map
	onceListenerMap sync.Map
	wg              sync.WaitGroup
	shutdownMu      sync.RWMutex // orders wg.Add in AsyncEmit before wg.Wait in Close
	inShutdown      atomic.Bool  // true when bus is in shutdown
	options         *option
}

func (b *bus) On(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, e.Type(), lis, b.appendListener)
	return nil
}

func (b *bus) Prepend(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, e.Type(), lis, b.prependListener)
	return nil
}

func (b *bus) Once(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis}
	b.spin(&b.onceListenerMap, e.Type(), onceLis, b.appendListener)
	return nil
}

func (b *bus) PrependOnce(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis}
	b.spin(&b.onceListenerMap, e.Type(), onceLis, b.prependListener)
	return nil
}

func (b *bus) Emit(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	eventType := e.Type()
	listeners := b.listeners(&b.listenerMap, eventType)
	onceListeners := b.listeners(&b.onceListenerMap, eventType)
	// detach one-time listeners before calling them, a listener may emit the same event again.
	for _, lis := range onceListeners {
		b.spin(&b.onceListenerMap, eventType, lis, b.removeListener)
	}
	errs := make([]error, 0, len(listeners)+len(onceListeners))
	for _, listener := range listeners {
		errs = append(errs, listener.Handle(e))
	}
	for _, listener := range onceListeners {
		errs = append(errs, listener.Handle(e))
	}
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(e Event) <-chan error {
	if err := b.checkEvent(e); err != nil {
		return errChan(err)
	}
	b.shutdownMu.RLock()
	if b.shuttingDown() {
		b.shutdownMu.RUnlock()
		return errChan(ErrBusClosed)
	}
	eventType := e.Type()
	listeners := b.listeners(&b.listenerMap, eventType)
	onceListeners := b.listeners(&b.onceListenerMap, eventType)
	for _, lis := range onceListeners {
		b.spin(&b.onceListenerMap, eventType, lis, b.removeListener)
	}
	listeners = append(listeners, onceListeners...)
	if len(listeners) == 0 {
		b.shutdownMu.RUnlock()
		return errChan(ErrListener{EventType: eventType})
	}
	b.wg.Add(len(listeners))
	b.shutdownMu.RUnlock()

	errCs := make([]<-chan error, 0, len(listeners))
	for _, listener := range listeners {
		listener := listener
		errC := make(chan error, 1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := brave.DoE(func() error { return listener.Handle(e) }); err != nil {
				errC <- err
			}
		})
		if err != nil {
			b.wg.Done()
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (b *bus) Off(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	eventType := e.Type()
	b.spin(&b.listenerMap, eventType, lis, b.offListener)
	b.spin(&b.onceListenerMap, eventType, lis, b.offOnceListener)
	return nil
}

func (b *bus) OffAll(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	eventType := e.Type()
	b.listenerMap.Delete(eventType)
	b.onceListenerMap.Delete(eventType)
	return nil
}

// Close stops accepting listeners and events, then waits for in-flight AsyncEmit listeners
// or for ctx to be done.
func (b *bus) Close(ctx context.Context) error {
	b.shutdownMu.Lock()
	closing := b.inShutdown.CompareAndSwap(false, true)
	b.shutdownMu.Unlock()
	if !closing {
		return ErrBusClosed
	}
	drained := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(drained)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-drained:
		return nil
	}
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

func (b *bus) check(e Event, lis Listener) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if lis == nil {
		return ErrListenerNil
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (b *bus) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if e.Type() == nil || e.Type().Kind() == reflect.Invalid {
		return ErrEventTypeInvalid
	}
	return nil
}

// listeners returns a snapshot of the listeners registered for eventType.
func (*bus) listeners(listenerMap *sync.Map, eventType reflect.Type) []Listener {
	value, ok := listenerMap.Load(eventType)
	if !ok {
		return nil
	}
	listeners := *(value.(*[]Listener))
	return append([]Listener(nil), listeners...)
}

func (*bus) loadAndOn(listenerMap *sync.Map, eventType reflect.Type, lis Listener, pendFunc func([]Listener, ...Listener) []Listener) (any, any, bool) {
	ptr := &[]Listener{lis}
	oldVal, loaded := listenerMap.LoadOrStore(eventType, ptr)
	if !loaded {
		return oldVal, nil, false
	}
	oldListeners := *(oldVal.(*[]Listener))
	newListeners := pendFunc(append([]Listener(nil), oldListeners...), lis)
	return oldVal, &newListeners, true
}

func (b *bus) appendListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		return append(listeners, listener...)
	}
	return b.loadAndOn(listenerMap, eventType, lis, pendFunc)
}

func (b *bus) prependListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		for i := len(listener) - 1; i >= 0; i-- {
			listeners = slicex.AppendFirst(listeners, listener[i])
		}
		return listeners
	}
	return b.loadAndOn(listenerMap, eventType, lis, pendFunc)
}

func (*bus) loadAndOff(listenerMap *sync.Map, eventType reflect.Type, lis Listener, indexesFunc func([]Listener, Listener) []int) (any, any, bool) {
	oldVal, ok := listenerMap.Load(eventType)
	if !ok {
		return oldVal, nil, false
	}
	oldListeners := *(oldVal.(*[]Listener))
	if len(oldListeners) == 0 {
		return oldVal, nil, false
	}
	indexes := indexesFunc(oldListeners, lis)
	if len(indexes) <= 0 {
		return oldVal, nil, false
	}
	newListeners := slicex.DeleteAll(append([]Listener(nil), oldListeners...), indexes...)
	return oldVal, &newListeners, true
}

func (b *bus) offListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		return slicex.Indexes(listeners, lis)
	}
	return b.loadAndOff(listenerMap, eventType, lis, indexesFunc)
}

// offOnceListener removes the one-time listeners wrapping lis.
func (b *bus) offOnceListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		f := func(onceLis Listener) bool {
			return onceLis.(*onceListener).Listener == lis
		}
		return slicex.IndexesFunc(listeners, f)
	}
	return b.loadAndOff(listenerMap, eventType, lis, indexesFunc)
}

// removeListener removes lis itself, compared by identity.
func (b *bus) removeListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		f := func(l Listener) bool {
			return l == lis
		}
		return slicex.IndexesFunc(listeners, f)
	}
	return b.loadAndOff(listenerMap, eventType, lis, indexesFunc)
}

func (b *bus) spin(listenerMap *sync.Map, eventType reflect.Type, lis Listener, load func(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool)) {
	oldVal, newVal, ok := load(listenerMap, eventType, lis)
	if !ok {
		return
	}
	backoff := 1
	for !listenerMap.CompareAndSwap(eventType, oldVal, newVal) {
		// Leverage the exponential backoff algorithm, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
		oldVal, newVal, ok = load(listenerMap, eventType, lis)
		if !ok {
			return
		}
	}
}

func errChan(err error) <-chan error {
	errC := make(chan error, 1)
	errC <- err
	close(errC)
	return errC
}
