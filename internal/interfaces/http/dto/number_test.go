package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	def := decimal.NewFromInt(1)
	tests := []struct {
		name    string
		body    string
		present bool
		want    string
	}{
		{"missing", `{}`, false, "1"},
		{"null", `{"v":null}`, false, "1"},
		{"empty string", `{"v":""}`, false, "1"},
		{"number", `{"v":12.5}`, true, "12.5"},
		{"numeric string", `{"v":" 7.25 "}`, true, "7.25"},
		{"negative", `{"v":-3}`, true, "-3"},
		{"garbage string", `{"v":"abc"}`, true, "1"},
		{"boolean", `{"v":true}`, true, "1"},
		{"object", `{"v":{"a":1}}`, true, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				V Number `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.present, body.V.Present())
			assert.Equal(t, tt.want, body.V.Or(def).String())
		})
	}
}

func TestNumber_Ptr(t *testing.T) {
	assert.Nil(t, NewNumber("").Ptr())
	assert.Nil(t, NewNumber("x").Ptr())
	require.NotNil(t, NewNumber("5000").Ptr())
	assert.Equal(t, "5000", NewNumber("5000").Ptr().String())
	assert.True(t, NewNumber("0").OrZero().IsZero())
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *uint
	}{
		{"integer", `{"id":3}`, uintPtr(3)},
		{"integer string", `{"id":"42"}`, uintPtr(42)},
		{"fraction truncated", `{"id":5.9}`, uintPtr(5)},
		{"missing", `{}`, nil},
		{"null", `{"id":null}`, nil},
		{"empty string", `{"id":""}`, nil},
		{"null string", `{"id":"null"}`, nil},
		{"zero", `{"id":0}`, nil},
		{"negative", `{"id":-4}`, nil},
		{"fraction string", `{"id":"1.5"}`, nil},
		{"boolean", `{"id":true}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				ID ID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.want, body.ID.Ptr())
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]ID{"a": NewID(9), "b": NewID(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":9,"b":null}`, string(out))
}

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"status":"paid"}`, "paid"},
		{"escaped", `{"status":"sent\u0021"}`, "sent!"},
		{"missing", `{}`, ""},
		{"null", `{"status":null}`, ""},
		{"number", `{"status":7}`, ""},
		{"boolean", `{"status":false}`, ""},
		{"object", `{"status":{"value":"paid"}}`, ""},
		{"array", `{"status":["paid"]}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Status Text `json:"status"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.want, body.Status.String())
		})
	}
}

func uintPtr(v uint) *uint { return &v }
