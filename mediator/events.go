package mediator

// RequestSubmitted is published by an aircraft before it asks the tower.
type RequestSubmitted struct {
	Aircraft string
	Request  Request
}

// PermissionGranted is published once the aircraft holds the runway.
type PermissionGranted struct {
	Aircraft string
	Request  Request
}

// RunwayBusy is published when a request is denied.
type RunwayBusy struct {
	Aircraft string
	Request  Request
}

// InvalidRequest is published when the tower ignores a request it does not know.
type InvalidRequest struct {
	Aircraft string
	Request  Request
}

type TookOff struct {
	Aircraft string
}

type Landed struct {
	Aircraft string
}
