// Package testutil contains helpers which are shared between the tests of multiple packages.
package testutil

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// MarshalJSON marshals the provided interface to JSON fatally terminating the current test in the event of a failure.
func MarshalJSON(t *testing.T, data any) []byte {
	dJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(data)
	require.NoError(t, err)

	return dJSON
}

// UnmarshalJSON unmarshals the provide JSON data into the given interface fatally terminating the current test in the
// even of a failure.
func UnmarshalJSON(t *testing.T, dJSON []byte, data any) {
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(dJSON, data))
}
