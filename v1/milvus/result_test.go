package milvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ResultKind
		wantErr  func(t *testing.T, err error)
	}{
		{name: "empty body", status: 200, body: "", wantKind: KindAcknowledged},
		{name: "whitespace body", status: 200, body: " \n\t", wantKind: KindAcknowledged},
		{name: "empty object", status: 200, body: "{}", wantKind: KindAcknowledged},
		{name: "empty array", status: 200, body: "[]", wantKind: KindAcknowledged},
		{name: "spaced empty object", status: 200, body: "{ }", wantKind: KindAcknowledged},
		{name: "pretty printed empty object", status: 200, body: "{\n}\n", wantKind: KindAcknowledged},
		{name: "spaced empty array", status: 200, body: "[ \n ]", wantKind: KindAcknowledged},
		{name: "array with members", status: 200, body: "[1]", wantKind: KindBody},
		{name: "data body", status: 200, body: `{"code":0,"data":{"has":true}}`, wantKind: KindBody},
		{name: "code 200", status: 200, body: `{"code":200,"data":{}}`, wantKind: KindBody},
		{name: "no envelope", status: 200, body: `{"data":{"x":1}}`, wantKind: KindBody},
		{
			name: "invalid json", status: 200, body: "{not json",
			wantErr: func(t *testing.T, err error) { assert.True(t, IsMalformedResponseError(err)) },
		},
		{
			name: "error code", status: 200, body: `{"code":1100,"message":"collection not found"}`,
			wantErr: func(t *testing.T, err error) {
				var se *ServerError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, int64(1100), se.Code)
				assert.Equal(t, "collection not found", se.Message)
				assert.Equal(t, 200, se.StatusCode)
				assert.Equal(t, `{"code":1100,"message":"collection not found"}`, string(se.Body))
			},
		},
		{
			name: "http error", status: 500, body: "internal",
			wantErr: func(t *testing.T, err error) {
				var se *ServerError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, 500, se.StatusCode)
				assert.Equal(t, "internal", string(se.Body))
				assert.True(t, IsServerError(err))
			},
		},
		{
			name: "http error with empty body", status: 404, body: "",
			wantErr: func(t *testing.T, err error) { assert.True(t, IsServerError(err)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := normalize(&Response{StatusCode: tt.status, Body: []byte(tt.body)})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, res)
				tt.wantErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, res.Kind())
		})
	}
}

func TestResultBodyIsVerbatim(t *testing.T) {
	body := `{"code": 0, "data": {"rowCount": 42}}` + "\n"
	res, err := normalize(&Response{StatusCode: 200, Body: []byte(body)})
	require.NoError(t, err)

	assert.False(t, res.Acknowledged())
	assert.Equal(t, body, string(res.Body()))
	assert.Equal(t, int64(42), res.Data().Get("rowCount").Int())
	assert.Equal(t, int64(42), res.Get("data.rowCount").Int())

	var decoded struct {
		Data struct {
			RowCount int `json:"rowCount"`
		} `json:"data"`
	}
	require.NoError(t, res.Decode(&decoded))
	assert.Equal(t, 42, decoded.Data.RowCount)
	assert.Equal(t, float64(42), res.Map()["data"].(map[string]any)["rowCount"])
}

func TestAcknowledgedAccessors(t *testing.T) {
	res := acknowledged()

	assert.True(t, res.Acknowledged())
	assert.Equal(t, "acknowledged", res.Kind().String())
	assert.Nil(t, res.Body())
	assert.Nil(t, res.Map())
	assert.False(t, res.Data().Exists())

	var v map[string]any
	assert.NoError(t, res.Decode(&v))
	assert.Nil(t, v)
}
