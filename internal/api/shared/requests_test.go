package shared

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedPayload struct {
	Name string `json:"name" validate:"required,max=8"`
	Age  int    `json:"age"  validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantErr     error
		errContains string
	}{
		{name: "valid json", body: `{"name":"deck","age":3}`},
		{name: "trailing comma", body: `{"name":"deck",}`, errContains: "invalid character"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "unknown field", body: `{"name":"deck","colour":"red"}`, errContains: "unknown field"},
		{name: "two objects", body: `{"name":"a"}{"name":"b"}`, errContains: "unexpected data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			var got namedPayload
			err := DecodeJSON(req, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, namedPayload{Name: "deck", Age: 3}, got)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestDecodeJSONWithReadError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})
	var target namedPayload
	err := DecodeJSON(req, &target)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}

type selfValidating struct {
	Name string
}

var errSelfInvalid = errors.New("name may not be invalid")

func (s *selfValidating) Validate() error {
	if s.Name == "invalid" {
		return errSelfInvalid
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{name: "custom validator passes", req: &selfValidating{Name: "ok"}},
		{name: "custom validator fails", req: &selfValidating{Name: "invalid"}, wantErr: true},
		{name: "struct tags pass", req: &namedPayload{Name: "deck"}},
		{name: "struct tags missing required", req: &namedPayload{}, wantErr: true},
		{name: "struct tags too long", req: &namedPayload{Name: "far too long"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
