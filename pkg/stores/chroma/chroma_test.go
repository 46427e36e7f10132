package chroma

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/steamseek/steamseek/pkg/errors"
)

func TestClientListCollections(t *testing.T) {
	Convey("Given a chroma client and a test server", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":"c1","name":"games_text_v2"},{"id":"c2","name":"games_image_v2"}]`)
		}))
		defer ts.Close()

		client := New(ts.URL)
		collections, err := client.ListCollections(context.Background())

		Convey("Then the collections should be parsed correctly", func() {
			So(err, ShouldBeNil)
			So(len(collections), ShouldEqual, 2)
			So(collections[0].Name, ShouldEqual, "games_text_v2")
			So(collections[1].ID, ShouldEqual, "c2")
		})
	})
}

func TestClientResolveCollection(t *testing.T) {
	Convey("Given a store exposing versioned collection names", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":"c1","name":"games_text_v2"},{"id":"c3","name":"games_video_v2"}]`)
		}))
		defer ts.Close()

		client := New(ts.URL)

		Convey("When resolving by substring", func() {
			collection, err := client.ResolveCollection(context.Background(), "video")

			Convey("Then the matching collection is returned", func() {
				So(err, ShouldBeNil)
				So(collection.ID, ShouldEqual, "c3")
			})
		})

		Convey("When no collection matches", func() {
			_, err := client.ResolveCollection(context.Background(), "image")

			Convey("Then ErrNoCollection is returned", func() {
				So(err, ShouldEqual, errors.ErrNoCollection)
			})
		})
	})
}

func TestClientQuery(t *testing.T) {
	Convey("Given a chroma client and a test server for query", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"ids":[["g7_1","g7","g9_2"]],"distances":[[0.10,0.12,0.15]]}`)
		}))
		defer ts.Close()

		client := New(ts.URL)
		results, err := client.Query(context.Background(), "c1", []float32{0.1, 0.2}, 3)

		Convey("Then the ranked hits should be returned in order", func() {
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 3)
			So(results[0].ID, ShouldEqual, "g7_1")
			So(results[0].Distance, ShouldEqual, 0.10)
			So(results[2].ID, ShouldEqual, "g9_2")
		})
	})
}

func TestClientQueryMismatchedArrays(t *testing.T) {
	Convey("Given a server answering with misaligned parallel arrays", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"ids":[["a","b"]],"distances":[[0.1]]}`)
		}))
		defer ts.Close()

		client := New(ts.URL)
		_, err := client.Query(context.Background(), "c1", []float32{0.1}, 2)

		Convey("Then the response is rejected", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
