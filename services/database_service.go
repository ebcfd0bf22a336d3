package services

import "context"

// Database is an optional sink for diagnostic records; payment data is never stored.
type Database interface {
	WriteLogMessage(ctx context.Context, data Data) error
}

type Data interface {
	DataType() string
}
