package catalog

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeStore struct {
	keys    []string
	objects map[string]string
}

func (f *fakeStore) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	return f.keys, nil
}

func (f *fakeStore) Get(ctx context.Context, bucket, key string) (*bytes.Buffer, error) {
	obj, ok := f.objects[key]

	if !ok {
		return nil, fmt.Errorf("no such key %s", key)
	}

	return bytes.NewBufferString(obj), nil
}

func TestLoad(t *testing.T) {
	Convey("Given an exploitation zone holding a versioned catalog", t, func() {
		store := &fakeStore{
			keys: []string{"json/", "json/raw_games.json", "json/20240601_enhanced_games.json"},
			objects: map[string]string{
				"json/20240601_enhanced_games.json": `{
					"g7": {"name": "Blade of the Abyss", "final_description": "A challenging action-RPG."},
					"g9": {"name": "Cozy Farm Meadows", "final_description": "A relaxing farming simulator."}
				}`,
			},
		}

		Convey("When loading by suffix", func() {
			catalog, err := Load(context.Background(), store, "exploitation-zone", "json/", "enhanced_games.json")

			Convey("Then the matching object is decoded", func() {
				So(err, ShouldBeNil)
				So(catalog.Len(), ShouldEqual, 2)

				game, ok := catalog.Get("g7")
				So(ok, ShouldBeTrue)
				So(game.Name, ShouldEqual, "Blade of the Abyss")
			})
		})

		Convey("When no object matches the suffix", func() {
			_, err := Load(context.Background(), store, "exploitation-zone", "json/", "missing.json")

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a loaded catalog", t, func() {
		catalog := &Store{games: map[string]Game{
			"g7": {Name: "Blade of the Abyss", FinalDescription: "A challenging action-RPG."},
			"g8": {},
		}}

		Convey("A known ID resolves to its entry", func() {
			game := catalog.Resolve("g7")
			So(game.Name, ShouldEqual, "Blade of the Abyss")
		})

		Convey("An unknown ID resolves to placeholders", func() {
			game := catalog.Resolve("g404")
			So(game.Name, ShouldEqual, UnknownName)
			So(game.FinalDescription, ShouldEqual, UnknownDescription)
		})

		Convey("Empty fields resolve to placeholders too", func() {
			game := catalog.Resolve("g8")
			So(game.Name, ShouldEqual, UnknownName)
			So(game.FinalDescription, ShouldEqual, UnknownDescription)
		})
	})
}
