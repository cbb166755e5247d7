// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

/*
TestID parses positive identifiers and rejects everything else.
*/
func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)

			id, err := requestutil.ID(request, "id")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

/*
TestDecodeJSON rejects malformed bodies and unknown fields.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"The Dueling Pianos Bar"}`))
	require.NoError(t, requestutil.DecodeJSON(ok, &target))
	assert.Equal(t, "The Dueling Pianos Bar", target.Name)

	unknown := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nmae":"x"}`))
	assert.True(t, apperr.HasCode(requestutil.DecodeJSON(unknown, &target), apperr.CodeValidation))

	broken := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, requestutil.DecodeJSON(broken, &target))
}
