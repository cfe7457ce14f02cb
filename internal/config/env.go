package config

import "strconv"

// EnvValue is the value of an environment variable. It is a closed set:
// IntegerValue and StringValue are the only implementations.
type EnvValue interface {
	isEnvValue()
	String() string
}

// IntegerValue is an environment variable given as an integer.
type IntegerValue int64

// StringValue is an environment variable given as a string.
type StringValue string

func (IntegerValue) isEnvValue() {}
func (StringValue) isEnvValue() {}

func (v IntegerValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v StringValue) String() string { return string(v) }
