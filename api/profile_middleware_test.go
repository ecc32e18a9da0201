package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestProfileNameMiddleware(t *testing.T) {
	testCases := []struct {
		name          string
		profile       string
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			profile: "forum_2024",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "forum_2024", recorder.Body.String())
			},
		},
		{
			name:    "SpacesInName",
			profile: "not%20a%20name",
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidProfileName.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "profile", res.Fields[0].FieldName)
			},
		},
		{
			name:    "TooLong",
			profile: fmt.Sprintf("%065d", 0),
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, nil, nil, nil)

			service.router.GET("/check/:profile", service.profileNameMiddleware(), func(ctx *gin.Context) {
				ctx.String(http.StatusOK, extractProfileNameFromCtx(ctx))
			})

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/check/%s", tc.profile), nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
