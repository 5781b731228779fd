package memento

// Initialized is published when an Editor is created.
type Initialized struct {
	State string
}

// Working is published before an Editor changes its state.
type Working struct{}

type StateChanged struct {
	State string
}

// BackingUp is published before the History saves the originator.
type BackingUp struct{}

// Listing carries the names of the mementos held by a History, oldest first.
type Listing struct {
	Names []string
}

// Restoring is published when the History hands a memento back to its originator.
type Restoring struct {
	Name string
}

// RestoreFailed is published when the originator refused a memento.
type RestoreFailed struct {
	Name string
	Err  error
}

// Restored is published by an Editor after its state was overwritten.
type Restored struct {
	State string
}
