package ports

import "time"

// Logger is the structured logging port the engine and its adapters write
// through. Implementations choose encoding and destination; callers only
// attach fields.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field is one key-value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Int creates an integer field
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Duration creates an elapsed-time field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val}
}

// Any creates a field from an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// Err creates a field under the conventional "error" key
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
