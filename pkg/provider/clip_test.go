package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClipEmbedder(t *testing.T) {
	Convey("Given a CLIP serving endpoint", t, func() {
		var gotPath string
		var gotBody map[string][]string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			fmt.Fprint(w, `{"embeddings":[[0.1,0.2,0.3]]}`)
		}))
		defer ts.Close()

		embedder := NewClipEmbedder(ts.URL + "/")

		Convey("When embedding a query", func() {
			embedding, err := embedder.Embed(context.Background(), "a dark fantasy action game")

			Convey("Then the vector is returned", func() {
				So(err, ShouldBeNil)
				So(len(embedding), ShouldEqual, 3)
				So(embedding[0], ShouldEqual, float32(0.1))
				So(gotPath, ShouldEqual, "/embed")
				So(gotBody["inputs"][0], ShouldEqual, "a dark fantasy action game")
			})
		})
	})
}

func TestClipEmbedderEmptyResponse(t *testing.T) {
	Convey("Given an endpoint returning no embeddings", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"embeddings":[]}`)
		}))
		defer ts.Close()

		embedder := NewClipEmbedder(ts.URL)
		_, err := embedder.Embed(context.Background(), "anything")

		Convey("Then the response is rejected", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
