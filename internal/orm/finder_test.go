package orm_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
)

func TestParseFinder(t *testing.T) {
	cases := []struct {
		name   string
		finder string
		want   []string
	}{
		{"single column", "find_by_fname", []string{"fname"}},
		{"two columns", "find_by_fname_and_lname", []string{"fname", "lname"}},
		{"three columns", "find_by_a_and_b_and_c", []string{"a", "b", "c"}},
		{"underscored column", "find_by_user_id", []string{"user_id"}},
		{"underscored pair", "find_by_user_id_and_question_id", []string{"user_id", "question_id"}},
		{"case insensitive", "Find_By_FNAME_AND_lname", []string{"fname", "lname"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := orm.ParseFinder(tc.finder)
			if err != nil {
				t.Fatalf("ParseFinder(%q) error: %v", tc.finder, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseFinder(%q) = %v, want %v", tc.finder, got, tc.want)
			}
		})
	}
}

func TestParseFinder_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		finder string
	}{
		{"no prefix", "fname_and_lname"},
		{"prefix only", "find_by_"},
		{"empty", ""},
		{"dangling and", "find_by_fname_and_"},
		{"bare and", "find_by_and"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orm.ParseFinder(tc.finder)
			var mfe *orm.MalformedFinderError
			if !errors.As(err, &mfe) {
				t.Fatalf("ParseFinder(%q): expected MalformedFinderError, got %v", tc.finder, err)
			}
		})
	}
}
