package similarity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/service/similarity"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns patents from the search API", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.Method).Equal(http.MethodPost)
			gt.Value(t, r.URL.Path).Equal("/api/bert_search")

			var req map[string]string
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req)).Required()
			gt.Value(t, req["idea"]).Equal("a self-watering plant pot")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"similar_patents": [
					{
						"title": "Automatic plant watering device",
						"abstract": "A reservoir feeds soil through a wick.",
						"publication_number": "US9999999",
						"date": "2019-04-02",
						"inventors": ["A. Gardener"],
						"self_link": "https://patents.example.com/US9999999"
					}
				]
			}`))
		}))
		defer srv.Close()

		svc, err := similarity.New(srv.URL)
		gt.NoError(t, err).Required()

		patents, err := svc.Search(ctx, "a self-watering plant pot")
		gt.NoError(t, err).Required()

		gt.Array(t, patents).Length(1)
		gt.Value(t, patents[0].Title).Equal("Automatic plant watering device")
		gt.Value(t, patents[0].PublicationNumber).Equal("US9999999")
		gt.Array(t, patents[0].Inventors).Length(1)
	})

	t.Run("absent similar_patents field yields an empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		svc, err := similarity.New(srv.URL)
		gt.NoError(t, err).Required()

		patents, err := svc.Search(ctx, "anything")
		gt.NoError(t, err).Required()
		gt.Value(t, patents).NotNil()
		gt.Array(t, patents).Length(0)
	})

	t.Run("non-OK status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc, err := similarity.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = svc.Search(ctx, "anything")
		gt.Error(t, err)
	})

	t.Run("empty base URL is rejected", func(t *testing.T) {
		_, err := similarity.New("")
		gt.Error(t, err)
	})
}
