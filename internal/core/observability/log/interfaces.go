package log

import (
	"time"
)

type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	With(fields ...Field) Log

	SetLevel(level Level)
	GetLevel() Level
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// A FieldType indicates which member of the Field union struct should be used
// and how it should be serialized.
type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	DurationType
	Float32Type
	Float64Type
	IntType
	Int64Type
	StringType
	TimeType
	Uint64Type
	ErrorType
)

func Any(key string, val any) Field {
	return Field{
		Key:   key,
		Type:  UnknownType,
		Value: val,
	}
}

func Bool(key string, val bool) Field {
	return Field{
		Key:   key,
		Type:  BoolType,
		Value: val,
	}
}

func Duration(key string, val time.Duration) Field {
	return Field{
		Key:   key,
		Type:  DurationType,
		Value: val,
	}
}

func Float32(key string, val float32) Field {
	return Field{
		Key:   key,
		Type:  Float32Type,
		Value: val,
	}
}

func Float64(key string, val float64) Field {
	return Field{
		Key:   key,
		Type:  Float64Type,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Type:  IntType,
		Value: val,
	}
}

func Int64(key string, val int64) Field {
	return Field{
		Key:   key,
		Type:  Int64Type,
		Value: val,
	}
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Type:  StringType,
		Value: val,
	}
}

func Time(key string, val time.Time) Field {
	return Field{
		Key:   key,
		Type:  TimeType,
		Value: val,
	}
}

func Uint64(key string, val uint64) Field {
	return Field{
		Key:   key,
		Type:  Uint64Type,
		Value: val,
	}
}

func Error(val error) Field {
	return Field{
		Key:   "error",
		Type:  ErrorType,
		Value: val,
	}
}
