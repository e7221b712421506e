package service

// Principal identifies the authenticated actor on whose behalf a service
// call runs. Handlers build it from the verified token claims; services
// never read identity from ambient state.
type Principal struct {
	UserID uint
	Role   string
}
