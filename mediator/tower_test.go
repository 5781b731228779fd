package mediator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-leo/collaboration-pattern/event"
	"github.com/go-leo/collaboration-pattern/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type airfield struct {
	bus    event.Bus
	out    *bytes.Buffer
	tower  *Tower
	flight map[string]*Aircraft
}

func newAirfield(t *testing.T, names ...string) *airfield {
	t.Helper()
	bus := event.NewBus()
	out := &bytes.Buffer{}
	require.NoError(t, Narrate(bus, out))
	f := &airfield{
		bus:    bus,
		out:    out,
		tower:  NewTower(Bus(bus), Logger(discard())),
		flight: make(map[string]*Aircraft),
	}
	for _, name := range names {
		aircraft := NewAircraft(name, Bus(bus), Logger(discard()))
		require.NoError(t, f.tower.Register(aircraft))
		f.flight[name] = aircraft
	}
	return f
}

func (f *airfield) lines() []string {
	return strings.Split(strings.TrimSpace(f.out.String()), "\n")
}

func TestTower_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newAirfield(t, "Flight A1", "Flight B2", "Flight C3")
	a1, b2, c3 := f.flight["Flight A1"], f.flight["Flight B2"], f.flight["Flight C3"]

	steps := []func(context.Context) (Clearance, error){
		a1.RequestTakeoff,
		b2.RequestLanding,
		c3.RequestTakeoff,
		b2.RequestTakeoff,
	}
	for _, step := range steps {
		clearance, err := step(ctx)
		require.NoError(t, err)
		assert.Equal(t, Granted, clearance)
		assert.False(t, f.tower.RunwayInUse())
	}

	assert.Equal(t, []string{
		"Flight A1: Requesting permission for takeoff.",
		"Flight A1: Permission granted for takeoff.",
		"Flight A1: Taking off!",
		"Flight B2: Requesting permission for landing.",
		"Flight B2: Permission granted for landing.",
		"Flight B2: Landing!",
		"Flight C3: Requesting permission for takeoff.",
		"Flight C3: Permission granted for takeoff.",
		"Flight C3: Taking off!",
		"Flight B2: Requesting permission for takeoff.",
		"Flight B2: Permission granted for takeoff.",
		"Flight B2: Taking off!",
	}, f.lines())
}

func TestTower_RegisterKeepsOrderAndDuplicates(t *testing.T) {
	tower := NewTower(Logger(discard()))
	a1 := NewAircraft("Flight A1")
	b2 := NewAircraft("Flight B2")
	require.NoError(t, tower.Register(a1))
	require.NoError(t, tower.Register(b2))
	require.NoError(t, tower.Register(a1))

	assert.Equal(t, []*Aircraft{a1, b2, a1}, tower.Aircraft())
	assert.ErrorIs(t, tower.Register(nil), ErrAircraftNil)

	registry := tower.Aircraft()
	registry[0] = nil
	assert.Same(t, a1, tower.Aircraft()[0])

	assert.Equal(t, 2, tower.Registrations(a1))
	assert.Equal(t, 2, tower.Registrations(NewAircraft("Flight A1")))
	assert.Equal(t, 1, tower.Registrations(b2))
	assert.Zero(t, tower.Registrations(NewAircraft("Flight C3")))
	assert.Zero(t, tower.Registrations(nil))
}

func TestTower_BusyRunwayDenies(t *testing.T) {
	ctx := context.Background()
	f := newAirfield(t, "Flight A1", "Flight B2")
	a1, b2 := f.flight["Flight A1"], f.flight["Flight B2"]

	var (
		clearance  Clearance
		requestErr error
		runwayHeld bool
	)
	landed := 0
	require.NoError(t, f.bus.On(event.Of[Landed](), event.ListenerFunc(func(e event.Event) error {
		landed++
		return nil
	})))
	require.NoError(t, f.bus.Once(event.Of[TookOff](), event.ListenerFunc(func(e event.Event) error {
		runwayHeld = f.tower.RunwayInUse()
		clearance, requestErr = b2.RequestLanding(ctx)
		return nil
	})))

	granted, err := a1.RequestTakeoff(ctx)
	require.NoError(t, err)
	assert.Equal(t, Granted, granted)

	assert.True(t, runwayHeld)
	require.NoError(t, requestErr)
	assert.Equal(t, Denied, clearance)
	assert.Zero(t, landed)
	assert.False(t, f.tower.RunwayInUse())

	assert.Equal(t, []string{
		"Flight A1: Requesting permission for takeoff.",
		"Flight A1: Permission granted for takeoff.",
		"Flight A1: Taking off!",
		"Flight B2: Requesting permission for landing.",
		"Flight B2: Runway busy. Please wait.",
	}, f.lines())

	// denied requests are not queued, B2 asks again
	clearance, err = b2.RequestLanding(ctx)
	require.NoError(t, err)
	assert.Equal(t, Granted, clearance)
	assert.Equal(t, 1, landed)
}

func TestTower_UnknownRequest(t *testing.T) {
	ctx := context.Background()
	f := newAirfield(t, "Flight A1")

	clearance, err := f.flight["Flight A1"].Request(ctx, Request("request_hold"))
	assert.ErrorIs(t, err, ErrUnknownRequest)
	assert.Equal(t, Denied, clearance)
	assert.False(t, f.tower.RunwayInUse())
	assert.Equal(t, []string{
		`Flight A1: Requesting permission for request_hold.`,
		`Flight A1: Unknown request "request_hold" ignored.`,
	}, f.lines())
}

func TestTower_NilAircraft(t *testing.T) {
	tower := NewTower(Logger(discard()))
	clearance, err := tower.Notify(context.Background(), nil, RequestTakeoff)
	assert.ErrorIs(t, err, ErrAircraftNil)
	assert.Equal(t, Denied, clearance)
}

func TestAircraft_Unbound(t *testing.T) {
	bus := event.NewBus()
	out := &bytes.Buffer{}
	require.NoError(t, Narrate(bus, out))
	a1 := NewAircraft("Flight A1", Bus(bus))

	clearance, err := a1.RequestTakeoff(context.Background())
	assert.ErrorIs(t, err, ErrUnbound)
	assert.Equal(t, Denied, clearance)
	assert.Empty(t, out.String())
}

func TestAircraft_Identity(t *testing.T) {
	a1 := NewAircraft("Flight A1")
	assert.Equal(t, "Flight A1", a1.Identity())
	assert.True(t, a1.SameIdentityAs(NewAircraft("Flight A1")))
	assert.False(t, a1.SameIdentityAs(NewAircraft("Flight B2")))
	assert.False(t, a1.SameIdentityAs(nil))
}

func TestTower_Interceptors(t *testing.T) {
	ctx := context.Background()
	var calls []string
	record := func(ctx context.Context, call Call, invoker middleware.Invoker[Call, Clearance]) (Clearance, error) {
		clearance, err := invoker(ctx, call)
		calls = append(calls, call.Aircraft.Name()+" "+string(call.Request)+" "+clearance.String())
		return clearance, err
	}
	grounded := func(ctx context.Context, call Call, invoker middleware.Invoker[Call, Clearance]) (Clearance, error) {
		if call.Request == RequestTakeoff {
			return Denied, nil
		}
		return invoker(ctx, call)
	}
	tower := NewTower(Logger(discard()), Interceptors(record, grounded))
	a1 := NewAircraft("Flight A1")
	require.NoError(t, tower.Register(a1))

	clearance, err := a1.RequestTakeoff(ctx)
	require.NoError(t, err)
	assert.Equal(t, Denied, clearance)

	clearance, err = a1.RequestLanding(ctx)
	require.NoError(t, err)
	assert.Equal(t, Granted, clearance)

	assert.Equal(t, []string{
		"Flight A1 request_takeoff denied",
		"Flight A1 request_landing granted",
	}, calls)
}

func TestAircraft_PublishFailureLogsEventID(t *testing.T) {
	bus := event.NewBus()
	errRadar := errors.New("ground radar offline")
	require.NoError(t, bus.On(event.Of[TookOff](), event.ListenerFunc(func(event.Event) error {
		return errRadar
	})))
	logs := &bytes.Buffer{}
	tower := NewTower(Bus(bus), Logger(discard()))
	a1 := NewAircraft("Flight A1", Bus(bus), Logger(slog.New(slog.NewJSONHandler(logs, nil))))
	require.NoError(t, tower.Register(a1))

	clearance, err := a1.RequestTakeoff(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Granted, clearance)

	var record struct {
		Msg   string `json:"msg"`
		ID    string `json:"id"`
		Event string `json:"event"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, "mediator: failed to publish event", record.Msg)
	assert.Equal(t, "mediator.TookOff", record.Event)
	assert.Equal(t, errRadar.Error(), record.Error)
	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
}
