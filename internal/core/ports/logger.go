package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// Named returns a child logger scoped to the given name. The route guide
	// uses one named logger per RPC method.
	Named(name string) Logger
}
