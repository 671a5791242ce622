package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type createReq struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Alias       *string `json:"alias" validate:"omitempty,min=1"`
	Code        string  `json:"code" validate:"omitempty,max=3"`
}

func TestStruct(t *testing.T) {
	empty := ""

	tests := []struct {
		name string
		in   createReq
		want map[string]string
	}{
		{name: "valid", in: createReq{Name: "Engineering"}, want: nil},
		{name: "missing name", in: createReq{}, want: map[string]string{"name": "is required"}},
		{name: "empty pointer", in: createReq{Name: "x", Alias: &empty}, want: map[string]string{"alias": "must not be empty"}},
		{name: "other tags keep the rule name", in: createReq{Name: "x", Code: "ABCD"}, want: map[string]string{"code": "validation failed for 'max' with parameter '3'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Struct(tt.in))
		})
	}
}

func TestToDetails_Fallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
