package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	mockdb "github.com/yldio/xbbcode/db/mock"
	db "github.com/yldio/xbbcode/db/sqlc"
	"go.uber.org/mock/gomock"
)

func TestListProfiles(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "InvalidLimit",
			query: "limit=0",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListProfiles(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "limit", res.Fields[0].FieldName)
			},
		},
		{
			name:  "DefaultPaging",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ListProfilesParams{
					Limit:  20,
					Offset: 0,
				}
				store.EXPECT().ListProfiles(gomock.Any(), arg).
					Times(1).Return([]db.Profile{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "ListFails",
			query: "limit=10&offset=30",
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ListProfilesParams{
					Limit:  10,
					Offset: 30,
				}
				store.EXPECT().ListProfiles(gomock.Any(), arg).
					Times(1).Return(nil, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name:  "OK",
			query: "limit=2",
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ListProfilesParams{
					Limit:  2,
					Offset: 0,
				}
				profiles := []db.Profile{randomProfileRow(), randomProfileRow()}
				store.EXPECT().ListProfiles(gomock.Any(), arg).
					Times(1).Return(profiles, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res ListProfilesResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Len(t, res.Profiles, 2)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)

			recorder := httptest.NewRecorder()
			url := fmt.Sprintf("%s?%s", ProfilesURL, tc.query)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
