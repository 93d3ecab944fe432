package engine

import "fmt"

var (
	ErrCastFailed       = fmt.Errorf("cast failed")
	ErrClassRegistered  = fmt.Errorf("class already registered")
	ErrClassUnknown     = fmt.Errorf("class not registered")
	ErrNoLoader         = fmt.Errorf("no loader registered for path")
	ErrPathInUse        = fmt.Errorf("object path already in use")
	ErrObjectNotCreated = fmt.Errorf("loader returned no object")
)
